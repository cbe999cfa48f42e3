package response

import (
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InitiatePaymentResponse struct {
	PaymentID   uuid.UUID `json:"paymentId"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
}

func FromInitiateResult(result *commands.InitiatePaymentResult) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		PaymentID:   result.PaymentID,
		AmountCents: result.AmountCents,
		Currency:    result.Currency,
	}
}

type CheckoutResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	BasePriceCents int64     `json:"basePriceCents"`
	TaxCents       int64     `json:"taxCents"`
	TotalCents     int64     `json:"totalCents"`
	Currency       string    `json:"currency"`
}

func FromCheckoutView(view *queries.CheckoutView) *CheckoutResponse {
	var resp CheckoutResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type ReceiptResponse struct {
	PaymentID      uuid.UUID `json:"paymentId"`
	BookingID      uuid.UUID `json:"bookingId"`
	BasePriceCents int64     `json:"basePriceCents"`
	TaxCents       int64     `json:"taxCents"`
	TotalCents     int64     `json:"totalCents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Exact          bool      `json:"exact"`
}

func FromReceiptView(view *queries.ReceiptView) *ReceiptResponse {
	var resp ReceiptResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
