//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/internal/handler/dto/response"
	"slotbooker/tests/common/dbtest"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	slotsURL    = "/api/service-types/%s/slots"
	paymentsURL = "/api/payments"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// nextSlotStart returns an hour-aligned slot start inside the default
// 09:00-17:00 window, one week out so admission never races the clock.
func nextSlotStart(t *testing.T, loc *time.Location) time.Time {
	t.Helper()
	d := time.Now().In(loc).AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, loc)
}

func (s *BookingSuite) kolkata() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(s.T(), err)
	return loc
}

func (s *BookingSuite) admitRequest(serviceTypeID uuid.UUID, start time.Time, email string) reqdto.AdmitBookingRequest {
	return reqdto.AdmitBookingRequest{
		ServiceTypeID: serviceTypeID,
		StartTime:     start,
		CustomerEmail: email,
		CustomerName:  "Asha Rao",
	}
}

func (s *BookingSuite) activeBookingCount(serviceTypeID uuid.UUID) int {
	var count int
	err := s.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE service_type_id = $1 AND status <> 'cancelled'", serviceTypeID).Scan(&count)
	require.NoError(s.T(), err)
	return count
}

// =============================================================================
// TestAdmitBooking - admission flow against a real database
// =============================================================================

func (s *BookingSuite) TestAdmitBooking() {
	s.Run("Normal case: admits a guest and the slot reflects the occupancy", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Deep Tissue Massage", 60, 3, 1500, nil)
		start := nextSlotStart(t, s.kolkata())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "guest@example.com"), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var admitted response.AdmitBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &admitted))
		require.Equal(t, "confirmed", admitted.Status)
		require.True(t, admitted.EndTime.Equal(start.Add(time.Hour)))

		// Read the booking back
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+admitted.BookingID.String(), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)

		var detail response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &detail))

		expected := &response.BookingResponse{
			ServiceTypeName: "Deep Tissue Massage",
			CustomerEmail:   "guest@example.com",
			Status:          "confirmed",
			PaymentStatus:   "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "ServiceTypeID", "CustomerID", "StartTime", "EndTime", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &detail, opts...); diff != "" {
			t.Errorf("booking response mismatch (-want +got):\n%s", diff)
		}

		// The day's slot list counts the admission
		date := start.In(s.kolkata()).Format("2006-01-02")
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(slotsURL, serviceTypeID)+"?date="+date, nil, "")
		require.Equal(t, http.StatusOK, sw.Code)

		var slots response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &slots))
		require.Len(t, slots.Slots, 8)

		var booked *response.SlotResponse
		for i := range slots.Slots {
			if slots.Slots[i].StartTime.Equal(start) {
				booked = &slots.Slots[i]
			}
		}
		require.NotNil(t, booked, "admitted slot missing from the listing")
		require.Equal(t, 1, booked.BookedCount)
		require.True(t, booked.Available)
	})

	s.Run("Normal case: admitting the same guest twice reuses the customer", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Consultation", 60, 3, 1000, nil)
		start := nextSlotStart(t, s.kolkata())

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "repeat@example.com"), "")
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start.Add(time.Hour), "repeat@example.com"), "")
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())

		var a1, a2 response.AdmitBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &a1))
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &a2))
		require.Equal(t, a1.CustomerID, a2.CustomerID)

		var customers int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM customers WHERE email = 'repeat@example.com'").Scan(&customers)
		require.NoError(t, err)
		require.Equal(t, 1, customers)
	})

	s.Run("Error case: off-grid start time is rejected", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Deep Tissue Massage", 60, 3, 1500, nil)
		start := nextSlotStart(t, s.kolkata()).Add(30 * time.Minute)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "guest@example.com"), "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: schedule rules shut the default window", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "Room A")
		// Available Mondays only; the target slot is whatever weekday one week out is.
		start := nextSlotStart(t, s.kolkata())
		weekday := (int(start.Weekday()) + 6) % 7
		closedDay := (weekday + 1) % 7
		dbtest.CreateTestScheduleRule(t, s.DB, resourceID, closedDay, "09:00", "17:00", false)

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Deep Tissue Massage", 60, 3, 1500, &resourceID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "guest@example.com"), "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAdmissionRace - concurrent admissions never overshoot capacity
// =============================================================================

func (s *BookingSuite) TestAdmissionRace() {
	s.Run("Normal case: exactly capacity admissions win a contended slot", func() {
		t := s.T()

		const capacity = 2
		const contenders = 8

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Deep Tissue Massage", 60, capacity, 1500, nil)
		start := nextSlotStart(t, s.kolkata())

		codes := make([]int, contenders)
		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				email := fmt.Sprintf("racer%d@example.com", i)
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					s.admitRequest(serviceTypeID, start, email), "")
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		admitted := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				admitted++
			case http.StatusConflict, http.StatusServiceUnavailable:
				// full or contended; both are valid rejections
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, capacity, admitted, "admissions must match capacity exactly")
		require.Equal(t, capacity, s.activeBookingCount(serviceTypeID))
	})
}

// =============================================================================
// TestCancelBooking - cancellation releases the seat
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancelling frees the seat for the next guest", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Consultation", 60, 1, 1000, nil)
		start := nextSlotStart(t, s.kolkata())

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "first@example.com"), "")
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		var first response.AdmitBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		// Seat taken
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "second@example.com"), "")
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+first.BookingID.String()+"/cancel", nil, "")
		require.Equal(t, http.StatusNoContent, cw.Code)

		// Seat free again
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "second@example.com"), "")
		require.Equal(t, http.StatusCreated, w3.Code, w3.Body.String())
	})

	s.Run("Error case: cancelling twice is rejected", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Consultation", 60, 1, 1000, nil)
		start := nextSlotStart(t, s.kolkata())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "guest@example.com"), "")
		require.Equal(t, http.StatusCreated, w.Code)

		var admitted response.AdmitBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &admitted))

		cancelURL := bookingsURL + "/" + admitted.BookingID.String() + "/cancel"
		c1 := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, "")
		require.Equal(t, http.StatusNoContent, c1.Code)

		c2 := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, "")
		require.Equal(t, http.StatusUnprocessableEntity, c2.Code)
	})
}

// =============================================================================
// TestPaymentFlow - checkout, settlement and receipt reconciliation
// =============================================================================

func (s *BookingSuite) TestPaymentFlow() {
	s.Run("Normal case: checkout, settle and reconcile the receipt", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Deep Tissue Massage", 60, 3, 1500, nil)
		start := nextSlotStart(t, s.kolkata())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "payer@example.com"), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var admitted response.AdmitBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &admitted))

		// Checkout quotes 10% tax on the base price
		qw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+admitted.BookingID.String()+"/checkout", nil, "")
		require.Equal(t, http.StatusOK, qw.Code)

		var quote response.CheckoutResponse
		require.NoError(t, httptest.DecodeResponseBody(t, qw.Body, &quote))
		require.Equal(t, int64(1500), quote.BasePriceCents)
		require.Equal(t, int64(150), quote.TaxCents)
		require.Equal(t, int64(1650), quote.TotalCents)
		require.Equal(t, "INR", quote.Currency)

		// Initiate a payment for the quoted total, passing the quote through
		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL,
			map[string]any{
				"booking_id":   admitted.BookingID,
				"amount_cents": quote.TotalCents,
				"currency":     quote.Currency,
			}, "")
		require.Equal(t, http.StatusCreated, iw.Code, iw.Body.String())

		var initiated response.InitiatePaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &initiated))
		require.Equal(t, quote.TotalCents, initiated.AmountCents)

		// Settle it as succeeded
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			paymentsURL+"/"+initiated.PaymentID.String()+"/settle",
			map[string]any{"outcome": "succeeded", "provider_ref": "txn-001"}, "")
		require.Equal(t, http.StatusNoContent, sw.Code, sw.Body.String())

		// The booking is now paid
		bw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+admitted.BookingID.String(), nil, "")
		require.Equal(t, http.StatusOK, bw.Code)

		var detail response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, bw.Body, &detail))
		require.Equal(t, "paid", detail.PaymentStatus)

		// And the receipt reverses the total exactly
		rw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			paymentsURL+"/"+initiated.PaymentID.String()+"/receipt", nil, "")
		require.Equal(t, http.StatusOK, rw.Code)

		var receipt response.ReceiptResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &receipt))
		require.Equal(t, int64(1500), receipt.BasePriceCents)
		require.Equal(t, int64(150), receipt.TaxCents)
		require.Equal(t, "succeeded", receipt.Status)
		require.True(t, receipt.Exact)
	})

	s.Run("Error case: a paid booking rejects further settlements", func() {
		t := s.T()

		serviceTypeID := dbtest.CreateTestServiceType(t, s.DB, "Consultation", 60, 3, 1000, nil)
		start := nextSlotStart(t, s.kolkata())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			s.admitRequest(serviceTypeID, start, "payer@example.com"), "")
		require.Equal(t, http.StatusCreated, w.Code)

		var admitted response.AdmitBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &admitted))

		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL,
			map[string]any{"booking_id": admitted.BookingID}, "")
		require.Equal(t, http.StatusCreated, iw.Code)

		var initiated response.InitiatePaymentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &initiated))

		sw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			paymentsURL+"/"+initiated.PaymentID.String()+"/settle",
			map[string]any{"outcome": "succeeded"}, "")
		require.Equal(t, http.StatusNoContent, sw.Code)

		// A second attempt against the settled booking is refused up front
		iw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL,
			map[string]any{"booking_id": admitted.BookingID}, "")
		require.Equal(t, http.StatusConflict, iw2.Code, iw2.Body.String())
	})
}
