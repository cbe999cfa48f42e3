package response

import (
	"time"

	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ServiceTypeID   uuid.UUID `json:"serviceTypeId"`
	ServiceTypeName string    `json:"serviceTypeName"`
	CustomerID      uuid.UUID `json:"customerId"`
	CustomerEmail   string    `json:"customerEmail"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromBookingView(view))
	}
	return resps
}

type AdmitBookingResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	CustomerID uuid.UUID `json:"customerId"`
	Status     string    `json:"status"`
	EndTime    time.Time `json:"endTime"`
}

func FromAdmitResult(result *commands.AdmitBookingResult) *AdmitBookingResponse {
	return &AdmitBookingResponse{
		BookingID:  result.BookingID,
		CustomerID: result.CustomerID,
		Status:     result.Status.String(),
		EndTime:    result.EndTime,
	}
}

type BookingStatsResponse struct {
	TotalBookings    int64            `json:"totalBookings"`
	ByStatus         map[string]int64 `json:"byStatus"`
	PaidRevenueCents int64            `json:"paidRevenueCents"`
}

func FromStatsView(view *queries.BookingStatsView) *BookingStatsResponse {
	var resp BookingStatsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
