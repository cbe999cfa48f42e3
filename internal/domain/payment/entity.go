package payment

import (
	"time"

	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount     = errs.New("payment amount cannot be negative")
	ErrInvalidTransition = errs.New("invalid payment status transition")
)

type Status string

const (
	StatusInitiated Status = "initiated"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInitiated, StatusSucceeded, StatusFailed:
		return true
	default:
		return false
	}
}

// Payment is one attempt at settling a booking. A booking may accumulate
// several attempts, but only one may succeed.
type Payment struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	amountCents int64
	currency    string
	provider    string
	status      Status
	providerRef *string
	createdAt   time.Time
	updatedAt   time.Time
}

func New(bookingID uuid.UUID, amountCents int64, currency, provider string) (*Payment, error) {
	if amountCents < 0 {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		amountCents: amountCents,
		currency:    currency,
		provider:    provider,
		status:      StatusInitiated,
	}, nil
}

func Reconstruct(
	id, bookingID uuid.UUID,
	amountCents int64,
	currency, provider string,
	status Status,
	providerRef *string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		bookingID:   bookingID,
		amountCents: amountCents,
		currency:    currency,
		provider:    provider,
		status:      status,
		providerRef: providerRef,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// MarkSucceeded settles the attempt. Only an initiated payment can succeed;
// succeeded and failed are terminal.
func (p *Payment) MarkSucceeded() error {
	if p.status != StatusInitiated {
		return ErrInvalidTransition
	}
	p.status = StatusSucceeded
	return nil
}

func (p *Payment) MarkFailed() error {
	if p.status != StatusInitiated {
		return ErrInvalidTransition
	}
	p.status = StatusFailed
	return nil
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) AmountCents() int64   { return p.amountCents }
func (p *Payment) Currency() string     { return p.currency }
func (p *Payment) Provider() string     { return p.provider }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) ProviderRef() *string { return p.providerRef }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }
