package commands

import (
	"context"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/payment"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound   = errs.New("payment not found")
	ErrBookingNotPayable = errs.New("booking cannot accept payments")
	ErrAlreadySettled    = errs.New("booking already has a succeeded payment")
)

type InitiatePaymentInput struct {
	BookingID uuid.UUID
	// AmountCents is the client-quoted total. When nil the tax-inclusive
	// total is derived from the service-type price.
	AmountCents *int64
	Currency    string
	Provider    string
}

type InitiatePaymentResult struct {
	PaymentID   uuid.UUID
	AmountCents int64
	Currency    string
}

type PaymentCommands interface {
	InitiatePayment(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error)
	MarkPaymentSucceeded(ctx context.Context, paymentID uuid.UUID, providerRef *string) error
	MarkPaymentFailed(ctx context.Context, paymentID uuid.UUID) error
}

type paymentUseCaseImpl struct {
	uow shared.UnitOfWork
	cfg config.BookingConfig
}

func NewPaymentUseCase(uow shared.UnitOfWork, cfg config.BookingConfig) PaymentCommands {
	return &paymentUseCaseImpl{uow: uow, cfg: cfg}
}

// InitiatePayment opens a settlement attempt. A client-quoted amount and
// currency are stored verbatim; only their absence falls back to the
// forward-derived total. Several attempts may coexist; succeeding is what
// is guarded.
func (uc *paymentUseCaseImpl) InitiatePayment(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error) {
	var result InitiatePaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, in.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if snap.Status == booking.StatusCancelled.String() {
			return ErrBookingNotPayable
		}
		if snap.PaymentStatus == booking.PaymentPaid.String() {
			return ErrAlreadySettled
		}

		st, err := tx.Reads().ServiceTypeByID(ctx, snap.ServiceTypeID)
		if err != nil {
			return err
		}

		base := uc.cfg.DefaultPriceCent
		currency := uc.cfg.DefaultCurrency
		if st.PriceCents != nil {
			base = *st.PriceCents
		}
		if st.Currency != "" {
			currency = st.Currency
		}

		amount := payment.ComputeAmounts(base).Total
		if in.AmountCents != nil {
			amount = *in.AmountCents
		}
		if in.Currency != "" {
			currency = in.Currency
		}

		p, err := payment.New(in.BookingID, amount, currency, in.Provider)
		if err != nil {
			return err
		}
		id, err := tx.Payments().Create(ctx, tx.DB(), p)
		if err != nil {
			return err
		}

		result = InitiatePaymentResult{
			PaymentID:   id,
			AmountCents: amount,
			Currency:    currency,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkPaymentSucceeded settles the attempt and flips the booking to paid in
// the same transaction. The partial unique index on succeeded payments is
// the last line of defense against a double settle.
func (uc *paymentUseCaseImpl) MarkPaymentSucceeded(ctx context.Context, paymentID uuid.UUID, providerRef *string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := uc.loadInitiated(ctx, tx, paymentID)
		if err != nil {
			return err
		}

		bsnap, err := tx.Reads().BookingByID(ctx, snap.BookingID)
		if err != nil {
			return err
		}
		if bsnap.PaymentStatus == booking.PaymentPaid.String() {
			return ErrAlreadySettled
		}

		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), paymentID, payment.StatusSucceeded, providerRef); err != nil {
			return err
		}
		return tx.Bookings().UpdatePaymentStatus(ctx, tx.DB(), snap.BookingID, booking.PaymentPaid)
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return ErrAlreadySettled
	}
	return err
}

func (uc *paymentUseCaseImpl) MarkPaymentFailed(ctx context.Context, paymentID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.loadInitiated(ctx, tx, paymentID); err != nil {
			return err
		}
		return tx.Payments().UpdateStatus(ctx, tx.DB(), paymentID, payment.StatusFailed, nil)
	})
}

func (uc *paymentUseCaseImpl) loadInitiated(ctx context.Context, tx shared.Tx, paymentID uuid.UUID) (*shared.PaymentSnapshot, error) {
	snap, err := tx.Reads().PaymentByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if snap.Status != payment.StatusInitiated.String() {
		return nil, payment.ErrInvalidTransition
	}
	return snap, nil
}
