package request

import (
	"slotbooker/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitiatePaymentRequest struct {
	BookingID   uuid.UUID `json:"booking_id" binding:"required"`
	AmountCents *int64    `json:"amount_cents" binding:"omitempty,min=0"`
	Currency    string    `json:"currency" binding:"omitempty,len=3"`
	Provider    string    `json:"provider" binding:"omitempty,max=64"`
}

func (r InitiatePaymentRequest) ToCommand() commands.InitiatePaymentInput {
	provider := r.Provider
	if provider == "" {
		provider = "mock"
	}
	return commands.InitiatePaymentInput{
		BookingID:   r.BookingID,
		AmountCents: r.AmountCents,
		Currency:    r.Currency,
		Provider:    provider,
	}
}

type SettlePaymentRequest struct {
	Outcome     string  `json:"outcome" binding:"required,oneof=succeeded failed"`
	ProviderRef *string `json:"provider_ref,omitempty"`
}
