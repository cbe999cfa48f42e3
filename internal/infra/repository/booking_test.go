//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/repository"
	"slotbooker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingMock(t *testing.T) (pgxmock.PgxPoolIface, *repository.BookingRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, repository.NewBookingRepository()
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns the inserted id", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		b, err := builder.NewBookingBuilder().BuildDomain(time.Now())
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.ID(), b.CustomerID(), b.ServiceTypeID(), pgxmock.AnyArg(),
				b.StartTime(), b.EndTime(), b.Status().String(), b.PaymentStatus().String()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(b.ID()))

		id, err := repo.Create(ctx, mock, b)

		require.NoError(t, err)
		assert.Equal(t, b.ID(), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: duplicate active slot booking", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		b, err := builder.NewBookingBuilder().BuildDomain(time.Now())
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.ID(), b.CustomerID(), b.ServiceTypeID(), pgxmock.AnyArg(),
				b.StartTime(), b.EndTime(), b.Status().String(), b.PaymentStatus().String()).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

		_, err = repo.Create(ctx, mock, b)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("error: missing customer surfaces as foreign key violation", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		b, err := builder.NewBookingBuilder().BuildDomain(time.Now())
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.ID(), b.CustomerID(), b.ServiceTypeID(), pgxmock.AnyArg(),
				b.StartTime(), b.EndTime(), b.Status().String(), b.PaymentStatus().String()).
			WillReturnError(&pgconn.PgError{Code: "23503", Message: "foreign key violation"})

		_, err = repo.Create(ctx, mock, b)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: one row updated", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		id := uuid.New()

		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(id, "cancelled").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(ctx, mock, id, booking.StatusCancelled)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: zero rows means not found", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		id := uuid.New()

		mock.ExpectExec("UPDATE bookings SET status").
			WithArgs(id, "confirmed").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStatus(ctx, mock, id, booking.StatusConfirmed)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: flips the booking to paid", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		id := uuid.New()

		mock.ExpectExec("UPDATE bookings SET payment_status").
			WithArgs(id, "paid").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdatePaymentStatus(ctx, mock, id, booking.PaymentPaid)

		require.NoError(t, err)
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: removes the row", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		id := uuid.New()

		mock.ExpectExec("DELETE FROM bookings").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.Delete(ctx, mock, id)

		require.NoError(t, err)
	})

	t.Run("error: zero rows means not found", func(t *testing.T) {
		mock, repo := newBookingMock(t)
		id := uuid.New()

		mock.ExpectExec("DELETE FROM bookings").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(ctx, mock, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
