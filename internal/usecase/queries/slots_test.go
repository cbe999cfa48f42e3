//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbooker/internal/domain/slot"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotViewRepo struct {
	serviceTypes map[uuid.UUID]*queries.ServiceTypeView
	rules        map[uuid.UUID][]shared.RuleSnapshot
	occupancy    slot.Occupancy
}

func newFakeSlotViewRepo() *fakeSlotViewRepo {
	return &fakeSlotViewRepo{
		serviceTypes: map[uuid.UUID]*queries.ServiceTypeView{},
		rules:        map[uuid.UUID][]shared.RuleSnapshot{},
		occupancy:    slot.Occupancy{},
	}
}

func (f *fakeSlotViewRepo) ServiceTypeByID(_ context.Context, id uuid.UUID) (*queries.ServiceTypeView, error) {
	if st, ok := f.serviceTypes[id]; ok {
		return st, nil
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "service type not found")
}

func (f *fakeSlotViewRepo) RulesForResource(_ context.Context, resourceID uuid.UUID) ([]shared.RuleSnapshot, error) {
	return f.rules[resourceID], nil
}

func (f *fakeSlotViewRepo) OccupancyForDay(_ context.Context, _ uuid.UUID, _, _ time.Time) (slot.Occupancy, error) {
	return f.occupancy, nil
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func newSlotQueriesFixture(t *testing.T) (*fakeSlotViewRepo, queries.SlotQueries) {
	t.Helper()
	repo := newFakeSlotViewRepo()
	q, err := queries.NewSlotQueries(repo, config.NewTestConfig().Booking)
	require.NoError(t, err)
	return repo, q
}

func seedServiceType(repo *fakeSlotViewRepo, durationMinutes, capacity int, resourceID *uuid.UUID) *queries.ServiceTypeView {
	st := &queries.ServiceTypeView{
		ID:              uuid.New(),
		ResourceID:      resourceID,
		Name:            "Deep Tissue Massage",
		DurationMinutes: durationMinutes,
		Capacity:        capacity,
		Published:       true,
		Currency:        "INR",
	}
	repo.serviceTypes[st.ID] = st
	return st
}

// 2026-09-10 is a Thursday (weekday index 3).
func thursday(t *testing.T) time.Time {
	return time.Date(2026, 9, 10, 0, 0, 0, 0, kolkata(t))
}

func TestListDay(t *testing.T) {
	ctx := context.Background()

	t.Run("success: default window yields the full grid", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		st := seedServiceType(repo, 60, 3, nil)

		slots, err := q.ListDay(ctx, st.ID, thursday(t))

		require.NoError(t, err)
		// 09:00 through 17:00 at 60 minutes is eight slots
		require.Len(t, slots, 8)
		first := slots[0]
		assert.Equal(t, 9, first.StartTime.Hour())
		assert.Equal(t, 10, first.EndTime.Hour())
		assert.Equal(t, 0, first.BookedCount)
		assert.True(t, first.Available)
		last := slots[len(slots)-1]
		assert.Equal(t, 16, last.StartTime.Hour())
		assert.Equal(t, 17, last.EndTime.Hour())
	})

	t.Run("success: occupancy marks full slots unavailable", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		st := seedServiceType(repo, 60, 2, nil)
		tenAM := time.Date(2026, 9, 10, 10, 0, 0, 0, kolkata(t))
		repo.occupancy[tenAM.Unix()] = 2

		slots, err := q.ListDay(ctx, st.ID, thursday(t))

		require.NoError(t, err)
		require.Len(t, slots, 8)
		assert.Equal(t, 2, slots[1].BookedCount)
		assert.False(t, slots[1].Available)
		assert.True(t, slots[0].Available)
		assert.True(t, slots[2].Available)
	})

	t.Run("success: trailing remainder shorter than duration is dropped", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		st := seedServiceType(repo, 90, 3, nil)

		slots, err := q.ListDay(ctx, st.ID, thursday(t))

		require.NoError(t, err)
		// 480 open minutes / 90 = 5 full slots, 30 minutes dropped
		require.Len(t, slots, 5)
		last := slots[len(slots)-1]
		assert.Equal(t, 15, last.StartTime.Hour())
		assert.Equal(t, 0, last.StartTime.Minute())
	})

	t.Run("success: schedule rules with a lunch break split the day", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		resourceID := uuid.New()
		st := seedServiceType(repo, 60, 3, &resourceID)
		repo.rules[resourceID] = []shared.RuleSnapshot{
			{ID: uuid.New(), ResourceID: resourceID, DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00", Available: true},
			{ID: uuid.New(), ResourceID: resourceID, DayOfWeek: 3, StartTime: "12:00", EndTime: "13:00", Available: false},
		}

		slots, err := q.ListDay(ctx, st.ID, thursday(t))

		require.NoError(t, err)
		// 09-12 gives three slots, 13-17 gives four
		require.Len(t, slots, 7)
		assert.Equal(t, 11, slots[2].StartTime.Hour())
		assert.Equal(t, 13, slots[3].StartTime.Hour())
	})

	t.Run("success: rules on other weekdays only mean a closed day", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		resourceID := uuid.New()
		st := seedServiceType(repo, 60, 3, &resourceID)
		repo.rules[resourceID] = []shared.RuleSnapshot{
			{ID: uuid.New(), ResourceID: resourceID, DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00", Available: true},
		}

		slots, err := q.ListDay(ctx, st.ID, thursday(t))

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("lenient: unknown service type yields empty list", func(t *testing.T) {
		_, q := newSlotQueriesFixture(t)

		slots, err := q.ListDay(ctx, uuid.New(), thursday(t))

		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("lenient: unpublished service type yields empty list", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		st := seedServiceType(repo, 60, 3, nil)
		st.Published = false

		slots, err := q.ListDay(ctx, st.ID, thursday(t))

		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestListDayStrict(t *testing.T) {
	ctx := context.Background()

	t.Run("error: unknown service type", func(t *testing.T) {
		_, q := newSlotQueriesFixture(t)

		_, err := q.ListDayStrict(ctx, uuid.New(), thursday(t))

		assert.ErrorIs(t, err, queries.ErrServiceTypeNotFound)
	})

	t.Run("error: unpublished service type is indistinguishable from missing", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		st := seedServiceType(repo, 60, 3, nil)
		st.Published = false

		_, err := q.ListDayStrict(ctx, st.ID, thursday(t))

		assert.ErrorIs(t, err, queries.ErrServiceTypeNotFound)
	})

	t.Run("success: generation is deterministic", func(t *testing.T) {
		repo, q := newSlotQueriesFixture(t)
		st := seedServiceType(repo, 60, 3, nil)

		first, err := q.ListDayStrict(ctx, st.ID, thursday(t))
		require.NoError(t, err)
		second, err := q.ListDayStrict(ctx, st.ID, thursday(t))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
