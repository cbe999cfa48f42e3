package readstore

import (
	"context"
	"time"

	"slotbooker/internal/domain/slot"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

// SlotReadStore feeds the slot generator: service type shape, the weekly
// plan, and the day's occupancy per start time.
type SlotReadStore struct {
	dbtx db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{dbtx: dbtx}
}

const slotServiceTypeSQL = `
SELECT id, resource_id, name, duration_minutes, capacity, published, requires_confirmation, price_cents, currency, created_at
FROM service_types
WHERE id = $1`

func (s *SlotReadStore) ServiceTypeByID(ctx context.Context, id uuid.UUID) (*queries.ServiceTypeView, error) {
	row := s.dbtx.QueryRow(ctx, slotServiceTypeSQL, id)
	view, err := scanServiceTypeView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service type", err)
	}
	return view, nil
}

func (s *SlotReadStore) RulesForResource(ctx context.Context, resourceID uuid.UUID) ([]shared.RuleSnapshot, error) {
	return NewCommandReadStore(s.dbtx).RulesForResource(ctx, resourceID)
}

const occupancyForDaySQL = `
SELECT start_time, count(*)
FROM bookings
WHERE service_type_id = $1
  AND start_time >= $2 AND start_time < $3
  AND status <> 'cancelled'
GROUP BY start_time`

func (s *SlotReadStore) OccupancyForDay(ctx context.Context, serviceTypeID uuid.UUID, dayStart, dayEnd time.Time) (slot.Occupancy, error) {
	rows, err := s.dbtx.Query(ctx, occupancyForDaySQL, serviceTypeID, dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slot occupancy", err)
	}
	defer rows.Close()

	occupancy := make(slot.Occupancy)
	for rows.Next() {
		var (
			start time.Time
			count int
		)
		if err := rows.Scan(&start, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot occupancy", err)
		}
		occupancy[start.Unix()] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot occupancy", err)
	}
	return occupancy, nil
}
