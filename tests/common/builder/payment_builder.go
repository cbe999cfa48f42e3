//go:build unit || e2e

package builder

import (
	"time"

	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	AmountCents int64
	Currency    string
	Provider    string
	Status      string
	ProviderRef *string
	CreatedAt   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		AmountCents: 1100,
		Currency:    "INR",
		Provider:    "mock",
		Status:      "initiated",
		CreatedAt:   time.Now(),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildSnapshot() *shared.PaymentSnapshot {
	return &shared.PaymentSnapshot{
		ID:          b.ID,
		BookingID:   b.BookingID,
		AmountCents: b.AmountCents,
		Currency:    b.Currency,
		Status:      b.Status,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:          b.ID,
		BookingID:   b.BookingID,
		AmountCents: b.AmountCents,
		Currency:    b.Currency,
		Provider:    b.Provider,
		Status:      b.Status,
		ProviderRef: b.ProviderRef,
		CreatedAt:   b.CreatedAt,
	}
}
