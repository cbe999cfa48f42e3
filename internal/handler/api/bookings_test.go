//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/customer"
	"slotbooker/internal/handler/api"
	"slotbooker/internal/handler/middleware"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"
	"slotbooker/tests/common/builder"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/common/testutil"
	commandsmock "slotbooker/tests/mock/commands"
	queriesmock "slotbooker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	metrics := middleware.NewMetrics(prometheus.NewRegistry())
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, metrics)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", customer.RoleOrganiser)
		c.Next()
	}

	s.router.POST("/bookings", s.handler.Admit)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.GET("/bookings", authMiddleware, s.handler.ListByCustomer)
	s.router.GET("/bookings/stats", authMiddleware, s.handler.Stats)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.Transition)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestAdmit
// ================================================================================

func (s *BookingHandlerTestSuite) TestAdmit() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildAdmitRequestDTO()
	expectedResult := &commands.AdmitBookingResult{
		BookingID:  uuid.New(),
		CustomerID: uuid.New(),
		Status:     booking.StatusConfirmed,
		EndTime:    bb.StartTime.Add(time.Hour),
	}

	missing := []testCaseBooking{
		{name: "missing field: service_type_id (required)", mutate: testutil.Field("service_type_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_email (required)", mutate: testutil.Field("customer_email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_name (required)", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseBooking{
		{name: "customer_email not an email", mutate: testutil.Field("customer_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "start_time not a timestamp", mutate: testutil.Field("start_time", "tomorrow-ish"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{missing, malformed}

	s.Run("success: returns 201 Created with admission result", func() {
		s.mockCommands.EXPECT().AdmitBooking(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.BookingID.String(), body["bookingId"])
		s.Equal(expectedResult.CustomerID.String(), body["customerId"])
		s.Equal("confirmed", body["status"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	s.Run("error: maps admission errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "service type not found",
				commandsError:  commands.ErrServiceTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service type not found",
			},
			{
				name:           "unpublished service type stays hidden",
				commandsError:  commands.ErrServiceTypeHidden,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service type not found",
			},
			{
				name:           "slot not bookable",
				commandsError:  commands.ErrSlotNotBookable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Requested time is not a bookable slot",
			},
			{
				name:           "start time in the past",
				commandsError:  booking.ErrInvalidStartTime,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Start time must be minute-aligned and in the future",
			},
			{
				name:           "capacity exhausted",
				commandsError:  commands.ErrCapacityExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot is fully booked",
			},
			{
				name:           "admission contended",
				commandsError:  commands.ErrAdmissionUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Could not admit booking, please retry",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to admit booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AdmitBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildView()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID.String(), body["id"])
		s.Equal(returnView.CustomerEmail, body["customerEmail"])
		s.Equal(returnView.Status, body["status"])
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

// ================================================================================
// TestListByCustomer
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByCustomer() {
	returnViews := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: returns 200 OK with default pagination", func() {
		s.mockQueries.EXPECT().ListByCustomerEmail(gomock.Any(), "guest@example.com", 50, 0).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=guest@example.com", nil, "bearer-token")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: forwards limit and offset", func() {
		s.mockQueries.EXPECT().ListByCustomerEmail(gomock.Any(), "guest@example.com", 10, 20).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=guest@example.com&limit=10&offset=20", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request without email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Query parameter email is required")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=guest@example.com", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestStats
// ================================================================================

func (s *BookingHandlerTestSuite) TestStats() {
	s.Run("success: returns 200 OK with aggregated stats", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any()).
			Return(&queries.BookingStatsView{
				TotalBookings:    12,
				ByStatus:         map[string]int64{"confirmed": 9, "cancelled": 3},
				PaidRevenueCents: 9900,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/stats", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(12), body["totalBookings"])
		s.Equal(float64(9900), body["paidRevenueCents"])
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestTransition
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransition() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), bookingID, booking.StatusCompleted).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request for unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), bookingID, booking.StatusConfirmed).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 422 Unprocessable Entity for disallowed transition", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), bookingID, booking.StatusCompleted).
			Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Status transition not allowed")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 422 Unprocessable Entity once terminal", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID).
			Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Booking can no longer be cancelled")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 409 Conflict when payments exist", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), bookingID).
			Return(commands.ErrPaymentAttached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking has payment attempts, cancel it instead")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
