//go:build unit

package queries_test

import (
	"context"
	"testing"

	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/queries"
	"slotbooker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentViewRepo struct {
	payments map[uuid.UUID]*queries.PaymentView
}

func (f *fakePaymentViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	if p, ok := f.payments[id]; ok {
		return p, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "payment not found")
}

type fakeBookingViewRepo struct {
	bookings map[uuid.UUID]*queries.BookingView
}

func (f *fakeBookingViewRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if b, ok := f.bookings[id]; ok {
		return b, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
}

func (f *fakeBookingViewRepo) FindByCustomerEmail(_ context.Context, email string, _, _ int32) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	for _, b := range f.bookings {
		if b.CustomerEmail == email {
			views = append(views, b)
		}
	}
	return views, nil
}

func (f *fakeBookingViewRepo) Stats(_ context.Context) (*queries.BookingStatsView, error) {
	return &queries.BookingStatsView{}, nil
}

type paymentQueryFixture struct {
	payments *fakePaymentViewRepo
	bookings *fakeBookingViewRepo
	slots    *fakeSlotViewRepo
	q        queries.PaymentQueries
}

func newPaymentQueryFixture(t *testing.T) *paymentQueryFixture {
	t.Helper()
	f := &paymentQueryFixture{
		payments: &fakePaymentViewRepo{payments: map[uuid.UUID]*queries.PaymentView{}},
		bookings: &fakeBookingViewRepo{bookings: map[uuid.UUID]*queries.BookingView{}},
		slots:    newFakeSlotViewRepo(),
	}
	f.q = queries.NewPaymentQueries(f.payments, f.bookings, f.slots, config.NewTestConfig().Booking)
	return f
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("success: quotes base, tax and total", func(t *testing.T) {
		f := newPaymentQueryFixture(t)
		price := int64(1000)
		st := builder.NewServiceTypeBuilder().With(func(b *builder.ServiceTypeBuilder) {
			b.PriceCents = &price
		}).BuildView()
		f.slots.serviceTypes[st.ID] = st
		bv := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ServiceTypeID = st.ID
		}).BuildView()
		f.bookings.bookings[bv.ID] = bv

		view, err := f.q.Checkout(ctx, bv.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), view.BasePriceCents)
		assert.Equal(t, int64(100), view.TaxCents)
		assert.Equal(t, int64(1100), view.TotalCents)
		assert.Equal(t, "INR", view.Currency)
	})

	t.Run("success: half-up rounding on an odd base", func(t *testing.T) {
		f := newPaymentQueryFixture(t)
		price := int64(1005)
		st := builder.NewServiceTypeBuilder().With(func(b *builder.ServiceTypeBuilder) {
			b.PriceCents = &price
		}).BuildView()
		f.slots.serviceTypes[st.ID] = st
		bv := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ServiceTypeID = st.ID
		}).BuildView()
		f.bookings.bookings[bv.ID] = bv

		view, err := f.q.Checkout(ctx, bv.ID)

		require.NoError(t, err)
		// 10% of 1005 is 100.5, rounded half-up to 101
		assert.Equal(t, int64(101), view.TaxCents)
		assert.Equal(t, int64(1106), view.TotalCents)
	})

	t.Run("success: unpriced type quotes the deployment default", func(t *testing.T) {
		f := newPaymentQueryFixture(t)
		st := builder.NewServiceTypeBuilder().With(func(b *builder.ServiceTypeBuilder) {
			b.PriceCents = nil
			b.Currency = ""
		}).BuildView()
		f.slots.serviceTypes[st.ID] = st
		bv := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ServiceTypeID = st.ID
		}).BuildView()
		f.bookings.bookings[bv.ID] = bv

		view, err := f.q.Checkout(ctx, bv.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), view.BasePriceCents)
		assert.Equal(t, "INR", view.Currency)
	})

	t.Run("error: unknown booking", func(t *testing.T) {
		f := newPaymentQueryFixture(t)

		_, err := f.q.Checkout(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestReceipt(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rebuilds the split exactly", func(t *testing.T) {
		f := newPaymentQueryFixture(t)
		pv := builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) {
			b.AmountCents = 1100
			b.Status = "succeeded"
		}).BuildView()
		f.payments.payments[pv.ID] = pv

		view, err := f.q.Receipt(ctx, pv.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(1000), view.BasePriceCents)
		assert.Equal(t, int64(100), view.TaxCents)
		assert.Equal(t, int64(1100), view.TotalCents)
		assert.True(t, view.Exact)
		assert.Equal(t, "succeeded", view.Status)
	})

	t.Run("success: lossy totals are flagged inexact", func(t *testing.T) {
		f := newPaymentQueryFixture(t)
		// no base price produces this total under 10% half-up
		pv := builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) {
			b.AmountCents = 5
		}).BuildView()
		f.payments.payments[pv.ID] = pv

		view, err := f.q.Receipt(ctx, pv.ID)

		require.NoError(t, err)
		assert.False(t, view.Exact)
		assert.Equal(t, pv.AmountCents, view.TotalCents)
	})

	t.Run("error: unknown payment", func(t *testing.T) {
		f := newPaymentQueryFixture(t)

		_, err := f.q.Receipt(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrPaymentNotFound)
	})
}
