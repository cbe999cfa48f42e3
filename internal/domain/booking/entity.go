package booking

import (
	"time"

	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.New("invalid booking status transition")
	ErrInvalidStartTime  = errs.New("start time must be minute-aligned and not in the past")
	ErrInvalidDuration   = errs.New("service duration must be positive")
)

// Booking is the persisted fact of a reservation against one slot. End time
// is always derived from the service duration, never accepted from callers.
type Booking struct {
	id            uuid.UUID
	customerID    uuid.UUID
	serviceTypeID uuid.UUID
	resourceID    *uuid.UUID
	startTime     time.Time
	endTime       time.Time
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// New admits a booking in its initial lifecycle state. A service type that
// requires confirmation starts pending; otherwise it is confirmed on the
// spot.
func New(
	customerID, serviceTypeID uuid.UUID,
	resourceID *uuid.UUID,
	startTime time.Time,
	duration time.Duration,
	requiresConfirmation bool,
	now time.Time,
) (*Booking, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if startTime.Truncate(time.Minute) != startTime || startTime.Before(now) {
		return nil, ErrInvalidStartTime
	}

	status := StatusConfirmed
	if requiresConfirmation {
		status = StatusPending
	}

	return &Booking{
		id:            uuid.New(),
		customerID:    customerID,
		serviceTypeID: serviceTypeID,
		resourceID:    resourceID,
		startTime:     startTime,
		endTime:       startTime.Add(duration),
		status:        status,
		paymentStatus: PaymentPending,
	}, nil
}

func Reconstruct(
	id, customerID, serviceTypeID uuid.UUID,
	resourceID *uuid.UUID,
	startTime, endTime time.Time,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerID:    customerID,
		serviceTypeID: serviceTypeID,
		resourceID:    resourceID,
		startTime:     startTime,
		endTime:       endTime,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// TransitionTo moves the booking to the requested status, enforcing the
// lifecycle table. Terminal states never transition again.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() || !CanTransition(b.status, next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) Confirm() error { return b.TransitionTo(StatusConfirmed) }
func (b *Booking) Cancel() error  { return b.TransitionTo(StatusCancelled) }
func (b *Booking) Complete() error {
	return b.TransitionTo(StatusCompleted)
}

// MarkPaid flips the payment status; it carries no lifecycle implications.
func (b *Booking) MarkPaid() {
	b.paymentStatus = PaymentPaid
}

// CountsAgainstCapacity reports whether the booking occupies a seat in its
// slot. Cancelled bookings release their seat.
func (b *Booking) CountsAgainstCapacity() bool {
	return b.status != StatusCancelled
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) CustomerID() uuid.UUID        { return b.customerID }
func (b *Booking) ServiceTypeID() uuid.UUID     { return b.serviceTypeID }
func (b *Booking) ResourceID() *uuid.UUID       { return b.resourceID }
func (b *Booking) StartTime() time.Time         { return b.startTime }
func (b *Booking) EndTime() time.Time           { return b.endTime }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
