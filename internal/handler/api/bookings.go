package api

import (
	"errors"
	"net/http"
	"strconv"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/handler/middleware"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/httperr"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	metrics         *middleware.Metrics
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, metrics *middleware.Metrics) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		metrics:         metrics,
	}
}

// @Summary Admit a booking
// @Description Admit a booking into a slot if capacity allows
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.AdmitBookingRequest true "Booking request"
// @Success 201 {object} resdto.AdmitBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Admit(c *gin.Context) {
	var req reqdto.AdmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingCommands.AdmitBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceTypeNotFound), errors.Is(err, commands.ErrServiceTypeHidden):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service type not found", nil)
		case errors.Is(err, commands.ErrSlotNotBookable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Requested time is not a bookable slot", nil)
		case errors.Is(err, booking.ErrInvalidStartTime):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time must be minute-aligned and in the future", nil)
		case errors.Is(err, commands.ErrCapacityExceeded):
			h.metrics.CountAdmission("rejected")
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is fully booked", nil)
		case errors.Is(err, commands.ErrAdmissionUnavailable):
			h.metrics.CountAdmission("contended")
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not admit booking, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to admit booking", nil)
		}
		return
	}

	h.metrics.CountAdmission("admitted")
	c.JSON(http.StatusCreated, resdto.FromAdmitResult(result))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings by customer email
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string true "Customer email"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("email required"), "Query parameter email is required", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.bookingQueries.ListByCustomerEmail(c.Request.Context(), email, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Booking statistics
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingStatsResponse
// @Router /bookings/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.bookingQueries.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(stats))
}

// @Summary Transition booking status
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target status"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	var req reqdto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err = h.bookingCommands.TransitionBooking(c.Request.Context(), id, booking.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Status transition not allowed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update booking", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	err = h.bookingCommands.CancelBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking can no longer be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel booking", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Description Remove a booking that has no payment attempts
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	err = h.bookingCommands.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrPaymentAttached):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking has payment attempts, cancel it instead", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete booking", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
