package queries

import (
	"context"

	"slotbooker/internal/domain/payment"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentQueries interface {
	// Checkout quotes base + tax + total for a booking before any payment
	// attempt exists. It never mutates anything.
	Checkout(ctx context.Context, bookingID uuid.UUID) (*CheckoutView, error)
	// Receipt rebuilds the split from the stored total of one attempt.
	Receipt(ctx context.Context, paymentID uuid.UUID) (*ReceiptView, error)
}

type PaymentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	payments     PaymentViewRepo
	bookings     BookingViewRepo
	serviceTypes SlotViewRepo
	cfg          config.BookingConfig
}

func NewPaymentQueries(payments PaymentViewRepo, bookings BookingViewRepo, serviceTypes SlotViewRepo, cfg config.BookingConfig) PaymentQueries {
	return &paymentQueriesImpl{payments: payments, bookings: bookings, serviceTypes: serviceTypes, cfg: cfg}
}

func (q *paymentQueriesImpl) Checkout(ctx context.Context, bookingID uuid.UUID) (*CheckoutView, error) {
	bv, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	st, err := q.serviceTypes.ServiceTypeByID(ctx, bv.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	base := q.cfg.DefaultPriceCent
	currency := q.cfg.DefaultCurrency
	if st.PriceCents != nil {
		base = *st.PriceCents
	}
	if st.Currency != "" {
		currency = st.Currency
	}

	amounts := payment.ComputeAmounts(base)
	return &CheckoutView{
		BookingID:      bookingID,
		BasePriceCents: amounts.BasePrice,
		TaxCents:       amounts.Tax,
		TotalCents:     amounts.Total,
		Currency:       currency,
	}, nil
}

func (q *paymentQueriesImpl) Receipt(ctx context.Context, paymentID uuid.UUID) (*ReceiptView, error) {
	pv, err := q.payments.FindByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	amounts, exact := payment.ReverseFromTotal(pv.AmountCents)
	return &ReceiptView{
		PaymentID:      pv.ID,
		BookingID:      pv.BookingID,
		BasePriceCents: amounts.BasePrice,
		TaxCents:       amounts.Tax,
		TotalCents:     amounts.Total,
		Currency:       pv.Currency,
		Status:         pv.Status,
		Exact:          exact,
	}, nil
}
