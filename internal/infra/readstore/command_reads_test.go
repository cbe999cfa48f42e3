//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandReadsMock(t *testing.T) (pgxmock.PgxPoolIface, *readstore.CommandReadStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, readstore.NewCommandReadStore(mock)
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func TestCommandReadStore_ServiceTypeByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: maps nullable columns into pointers", func(t *testing.T) {
		mock, store := newCommandReadsMock(t)
		id := uuid.New()
		resourceID := uuid.New()

		mock.ExpectQuery("SELECT id, resource_id, name").
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "resource_id", "name", "duration_minutes", "capacity",
				"published", "requires_confirmation", "price_cents", "currency",
			}).AddRow(
				id, pgUUID(resourceID), "Deep Tissue Massage", 60, 3,
				true, false, pgtype.Int8{Int64: 1500, Valid: true}, "INR",
			))

		snap, err := store.ServiceTypeByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, snap.ID)
		require.NotNil(t, snap.ResourceID)
		assert.Equal(t, resourceID, *snap.ResourceID)
		require.NotNil(t, snap.PriceCents)
		assert.Equal(t, int64(1500), *snap.PriceCents)
	})

	t.Run("success: absent resource and price stay nil", func(t *testing.T) {
		mock, store := newCommandReadsMock(t)
		id := uuid.New()

		mock.ExpectQuery("SELECT id, resource_id, name").
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "resource_id", "name", "duration_minutes", "capacity",
				"published", "requires_confirmation", "price_cents", "currency",
			}).AddRow(
				id, pgtype.UUID{}, "Consultation", 30, 1,
				true, true, pgtype.Int8{}, "",
			))

		snap, err := store.ServiceTypeByID(ctx, id)

		require.NoError(t, err)
		assert.Nil(t, snap.ResourceID)
		assert.Nil(t, snap.PriceCents)
	})

	t.Run("error: no rows maps to not found", func(t *testing.T) {
		mock, store := newCommandReadsMock(t)
		id := uuid.New()

		mock.ExpectQuery("SELECT id, resource_id, name").
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.ServiceTypeByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCommandReadStore_ActiveBookingCount(t *testing.T) {
	ctx := context.Background()

	t.Run("success: counts only non-cancelled rows for the slot", func(t *testing.T) {
		mock, store := newCommandReadsMock(t)
		serviceTypeID := uuid.New()
		start := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT count\(\*\)\s+FROM bookings`).
			WithArgs(serviceTypeID, start).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

		count, err := store.ActiveBookingCount(ctx, serviceTypeID, start)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommandReadStore_RulesForResource(t *testing.T) {
	ctx := context.Background()

	t.Run("success: inverts is_unavailable into Available", func(t *testing.T) {
		mock, store := newCommandReadsMock(t)
		resourceID := uuid.New()

		mock.ExpectQuery("SELECT id, resource_id, day_of_week").
			WithArgs(resourceID).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "resource_id", "day_of_week", "start", "end", "is_unavailable",
			}).
				AddRow(uuid.New(), resourceID, 0, "09:00", "17:00", false).
				AddRow(uuid.New(), resourceID, 0, "12:00", "13:00", true))

		rules, err := store.RulesForResource(ctx, resourceID)

		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.True(t, rules[0].Available)
		assert.False(t, rules[1].Available)
		assert.Equal(t, "09:00", rules[0].StartTime)
	})

	t.Run("success: no rules yields empty slice", func(t *testing.T) {
		mock, store := newCommandReadsMock(t)
		resourceID := uuid.New()

		mock.ExpectQuery("SELECT id, resource_id, day_of_week").
			WithArgs(resourceID).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "resource_id", "day_of_week", "start", "end", "is_unavailable",
			}))

		rules, err := store.RulesForResource(ctx, resourceID)

		require.NoError(t, err)
		assert.Empty(t, rules)
	})
}

func TestCommandReadStore_HasBookingsForServiceType(t *testing.T) {
	ctx := context.Background()

	mock, store := newCommandReadsMock(t)
	serviceTypeID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(serviceTypeID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	has, err := store.HasBookingsForServiceType(ctx, serviceTypeID)

	require.NoError(t, err)
	assert.True(t, has)
}
