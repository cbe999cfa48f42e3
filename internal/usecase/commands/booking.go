package commands

import (
	"context"
	"errors"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/customer"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/clock"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceTypeNotFound  = errs.New("service type not found")
	ErrServiceTypeHidden    = errs.New("service type is not published")
	ErrSlotNotBookable      = errs.New("requested time does not match an open slot")
	ErrCapacityExceeded     = errs.New("slot capacity exhausted")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrPaymentAttached      = errs.New("booking has payment attempts attached")
	ErrAdmissionUnavailable = errs.New("admission temporarily unavailable")
)

type AdmitBookingRequest struct {
	ServiceTypeID uuid.UUID
	StartTime     time.Time
	CustomerEmail string
	CustomerName  string
}

type AdmitBookingResult struct {
	BookingID  uuid.UUID
	CustomerID uuid.UUID
	Status     booking.Status
	EndTime    time.Time
}

type BookingCommands interface {
	AdmitBooking(ctx context.Context, req AdmitBookingRequest) (*AdmitBookingResult, error)
	TransitionBooking(ctx context.Context, bookingID uuid.UUID, next booking.Status) error
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
	loc   *time.Location
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) (BookingCommands, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking timezone")
	}
	return &bookingUseCaseImpl{uow: uow, clock: clk, cfg: cfg, loc: loc}, nil
}

// AdmitBooking decides admission inside a serializable transaction: the
// occupancy recount and the insert observe the same snapshot, so two racing
// admissions for the last seat cannot both commit.
func (uc *bookingUseCaseImpl) AdmitBooking(ctx context.Context, req AdmitBookingRequest) (*AdmitBookingResult, error) {
	st, err := uc.uow.CommandReads().ServiceTypeByID(ctx, req.ServiceTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceTypeNotFound
		}
		return nil, err
	}
	if !st.Published {
		return nil, ErrServiceTypeHidden
	}

	duration := time.Duration(st.DurationMinutes) * time.Minute
	// The grid is anchored in the deployment zone; the client's offset
	// only identifies the instant.
	start := req.StartTime.In(uc.loc)
	if err := uc.validateSlotStart(ctx, st, start, duration); err != nil {
		return nil, err
	}

	var result AdmitBookingResult
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerID, cerr := uc.resolveCustomer(ctx, tx, req.CustomerEmail, req.CustomerName)
		if cerr != nil {
			return cerr
		}

		booked, cerr := tx.Reads().ActiveBookingCount(ctx, st.ID, start)
		if cerr != nil {
			return cerr
		}
		if booked >= st.Capacity {
			return ErrCapacityExceeded
		}

		b, cerr := booking.New(customerID, st.ID, st.ResourceID, start, duration, st.RequiresConfirmation, uc.clock.Now())
		if cerr != nil {
			return cerr
		}

		id, cerr := tx.Bookings().Create(ctx, tx.DB(), b)
		if cerr != nil {
			return cerr
		}

		result = AdmitBookingResult{
			BookingID:  id,
			CustomerID: customerID,
			Status:     b.Status(),
			EndTime:    b.EndTime(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, shared.ErrMaxRetriesExceeded) {
			return nil, errs.Mark(err, ErrAdmissionUnavailable)
		}
		return nil, err
	}
	return &result, nil
}

func (uc *bookingUseCaseImpl) TransitionBooking(ctx context.Context, bookingID uuid.UUID, next booking.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if !booking.CanTransition(booking.Status(snap.Status), next) {
			return booking.ErrInvalidTransition
		}
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, next)
	})
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	return uc.TransitionBooking(ctx, bookingID, booking.StatusCancelled)
}

// DeleteBooking removes a booking outright. Bookings with any payment
// attempt keep their audit trail and must be cancelled instead.
func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().BookingByID(ctx, bookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		attempts, err := tx.Reads().PaymentCountForBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if attempts > 0 {
			return ErrPaymentAttached
		}
		return tx.Bookings().Delete(ctx, tx.DB(), bookingID)
	})
}

func (uc *bookingUseCaseImpl) validateSlotStart(ctx context.Context, st *shared.ServiceTypeSnapshot, start time.Time, duration time.Duration) error {
	var rules []shared.RuleSnapshot
	if st.ResourceID != nil {
		var err error
		rules, err = uc.uow.CommandReads().RulesForResource(ctx, *st.ResourceID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
	}

	windows, err := shared.WindowsForDay(rules, start, uc.cfg)
	if err != nil {
		return err
	}
	if !shared.SlotStartMatches(windows, start, start, duration) {
		return ErrSlotNotBookable
	}
	return nil
}

func (uc *bookingUseCaseImpl) resolveCustomer(ctx context.Context, tx shared.Tx, email, fullName string) (uuid.UUID, error) {
	existing, err := tx.Reads().CustomerByEmail(ctx, email)
	if err == nil {
		return existing.ID, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	guest, err := customer.NewGuest(email, fullName)
	if err != nil {
		return uuid.Nil, err
	}
	return tx.Customers().Create(ctx, tx.DB(), guest)
}
