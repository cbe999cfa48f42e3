package repository

import (
	"context"

	"slotbooker/internal/domain/servicetype"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ServiceTypeRepository struct{}

func NewServiceTypeRepository() *ServiceTypeRepository {
	return &ServiceTypeRepository{}
}

const createServiceTypeSQL = `
INSERT INTO service_types (id, name, duration_minutes, published, capacity, requires_confirmation, price_cents, currency, resource_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *ServiceTypeRepository) Create(ctx context.Context, tx db.DBTX, st *servicetype.ServiceType) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createServiceTypeSQL,
		st.ID(),
		st.Name(),
		st.DurationMinutes(),
		st.Published(),
		st.Capacity(),
		st.RequiresConfirmation(),
		pgconv.Int64PtrToPgtype(st.PriceCents()),
		st.Currency(),
		pgconv.UUIDPtrToPgtype(st.ResourceID()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service type", err)
	}
	return id, nil
}

const updateServiceTypeSQL = `
UPDATE service_types
SET name = $2, duration_minutes = $3, capacity = $4, price_cents = $5
WHERE id = $1`

func (r *ServiceTypeRepository) Update(ctx context.Context, tx db.DBTX, st *servicetype.ServiceType) error {
	tag, err := tx.Exec(ctx, updateServiceTypeSQL,
		st.ID(),
		st.Name(),
		st.DurationMinutes(),
		st.Capacity(),
		pgconv.Int64PtrToPgtype(st.PriceCents()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "service type not found")
	}
	return nil
}

const setServiceTypePublishedSQL = `
UPDATE service_types SET published = $2 WHERE id = $1`

func (r *ServiceTypeRepository) SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error {
	tag, err := tx.Exec(ctx, setServiceTypePublishedSQL, id, published)
	if err != nil {
		return infra.WrapRepoErr("failed to update service type visibility", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "service type not found")
	}
	return nil
}
