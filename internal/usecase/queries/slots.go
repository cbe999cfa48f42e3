package queries

import (
	"context"
	"errors"
	"time"

	"slotbooker/internal/domain/slot"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrServiceTypeNotFound = errs.New("service type not found")

type SlotQueries interface {
	// ListDay is lenient: an unknown or unpublished service type yields an
	// empty list, so availability widgets render without special-casing.
	ListDay(ctx context.Context, serviceTypeID uuid.UUID, date time.Time) ([]SlotView, error)
	// ListDayStrict reports ErrServiceTypeNotFound instead of hiding it.
	ListDayStrict(ctx context.Context, serviceTypeID uuid.UUID, date time.Time) ([]SlotView, error)
}

type SlotViewRepo interface {
	ServiceTypeByID(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error)
	RulesForResource(ctx context.Context, resourceID uuid.UUID) ([]shared.RuleSnapshot, error)
	OccupancyForDay(ctx context.Context, serviceTypeID uuid.UUID, dayStart, dayEnd time.Time) (slot.Occupancy, error)
}

type slotQueriesImpl struct {
	repo SlotViewRepo
	cfg  config.BookingConfig
	loc  *time.Location
}

func NewSlotQueries(repo SlotViewRepo, cfg config.BookingConfig) (SlotQueries, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking timezone")
	}
	return &slotQueriesImpl{repo: repo, cfg: cfg, loc: loc}, nil
}

func (q *slotQueriesImpl) ListDay(ctx context.Context, serviceTypeID uuid.UUID, date time.Time) ([]SlotView, error) {
	views, err := q.ListDayStrict(ctx, serviceTypeID, date)
	if err != nil {
		if errors.Is(err, ErrServiceTypeNotFound) {
			return []SlotView{}, nil
		}
		return nil, err
	}
	return views, nil
}

func (q *slotQueriesImpl) ListDayStrict(ctx context.Context, serviceTypeID uuid.UUID, date time.Time) ([]SlotView, error) {
	st, err := q.repo.ServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceTypeNotFound
		}
		return nil, err
	}
	if !st.Published {
		return nil, ErrServiceTypeNotFound
	}

	var rules []shared.RuleSnapshot
	if st.ResourceID != nil {
		rules, err = q.repo.RulesForResource(ctx, *st.ResourceID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, q.loc)
	windows, err := shared.WindowsForDay(rules, day, q.cfg)
	if err != nil {
		return nil, err
	}

	occupancy, err := q.repo.OccupancyForDay(ctx, serviceTypeID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	duration := time.Duration(st.DurationMinutes) * time.Minute
	slots := slot.Generate(serviceTypeID, day, windows, duration, st.Capacity, occupancy)

	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			ServiceTypeID: s.ServiceTypeID,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			BookedCount:   s.BookedCount,
			Capacity:      s.Capacity,
			Available:     s.Available,
		})
	}
	return views, nil
}
