package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	dbtx db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{dbtx: dbtx}
}

const catalogServiceTypesSQL = `
SELECT id, resource_id, name, duration_minutes, capacity, published, requires_confirmation, price_cents, currency, created_at
FROM service_types
WHERE published OR $1
ORDER BY name`

func (s *CatalogReadStore) FindServiceTypes(ctx context.Context, includeUnpublished bool) ([]*queries.ServiceTypeView, error) {
	rows, err := s.dbtx.Query(ctx, catalogServiceTypesSQL, includeUnpublished)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service types", err)
	}
	defer rows.Close()

	views := make([]*queries.ServiceTypeView, 0)
	for rows.Next() {
		view, err := scanServiceTypeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service type", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service types", err)
	}
	return views, nil
}

const catalogServiceTypeByIDSQL = `
SELECT id, resource_id, name, duration_minutes, capacity, published, requires_confirmation, price_cents, currency, created_at
FROM service_types
WHERE id = $1`

func (s *CatalogReadStore) FindServiceTypeByID(ctx context.Context, id uuid.UUID) (*queries.ServiceTypeView, error) {
	row := s.dbtx.QueryRow(ctx, catalogServiceTypeByIDSQL, id)
	view, err := scanServiceTypeView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service type", err)
	}
	return view, nil
}

const catalogRulesSQL = `
SELECT id, resource_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_unavailable
FROM schedules
WHERE resource_id = $1
ORDER BY day_of_week, start_time`

func (s *CatalogReadStore) FindRulesByResource(ctx context.Context, resourceID uuid.UUID) ([]*queries.ScheduleRuleView, error) {
	rows, err := s.dbtx.Query(ctx, catalogRulesSQL, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule rules", err)
	}
	defer rows.Close()

	views := make([]*queries.ScheduleRuleView, 0)
	for rows.Next() {
		var (
			view        queries.ScheduleRuleView
			unavailable bool
		)
		if err := rows.Scan(&view.ID, &view.ResourceID, &view.DayOfWeek, &view.StartTime, &view.EndTime, &unavailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule rule", err)
		}
		view.Available = !unavailable
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedule rules", err)
	}
	return views, nil
}

func scanServiceTypeView(row pgx.Row) (*queries.ServiceTypeView, error) {
	var (
		view       queries.ServiceTypeView
		resourceID pgtype.UUID
		priceCents pgtype.Int8
		createdAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &resourceID, &view.Name, &view.DurationMinutes, &view.Capacity,
		&view.Published, &view.RequiresConfirmation, &priceCents, &view.Currency, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	view.ResourceID = pgconv.UUIDPtrFromPgtype(resourceID)
	view.PriceCents = pgconv.Int64PtrFromPgtype(priceCents)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
