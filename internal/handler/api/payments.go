package api

import (
	"errors"
	"net/http"

	"slotbooker/internal/domain/payment"

	reqdto "slotbooker/internal/handler/dto/request"
	resdto "slotbooker/internal/handler/dto/response"
	"slotbooker/internal/handler/httperr"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Initiate payment
// @Description Open a settlement attempt for a booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.InitiatePaymentRequest true "Payment request"
// @Success 201 {object} resdto.InitiatePaymentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req reqdto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.paymentCommands.InitiatePayment(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBookingNotPayable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cancelled bookings cannot be paid", nil)
		case errors.Is(err, commands.ErrAlreadySettled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already paid", nil)
		case errors.Is(err, payment.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment amount", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to initiate payment", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInitiateResult(result))
}

// @Summary Settle payment
// @Description Record the provider outcome for an initiated payment
// @Tags payments
// @Accept json
// @Param id path string true "Payment ID"
// @Param request body reqdto.SettlePaymentRequest true "Outcome"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments/{id}/settle [post]
func (h *PaymentHandler) Settle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment ID", nil)
		return
	}

	var req reqdto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if req.Outcome == "succeeded" {
		err = h.paymentCommands.MarkPaymentSucceeded(c.Request.Context(), id, req.ProviderRef)
	} else {
		err = h.paymentCommands.MarkPaymentFailed(c.Request.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
		case errors.Is(err, commands.ErrAlreadySettled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already settled", nil)
		case errors.Is(err, payment.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment is no longer open", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to settle payment", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Checkout quote
// @Description Quote base price, tax and total for a booking
// @Tags payments
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/checkout [get]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.paymentQueries.Checkout(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute checkout", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary Payment receipt
// @Description Re-derive the base and tax split from a payment's total
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 404 {object} httperr.Response
// @Router /payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment ID", nil)
		return
	}

	view, err := h.paymentQueries.Receipt(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrPaymentNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build receipt", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReceiptView(view))
}
