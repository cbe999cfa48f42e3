package queries

import (
	"context"

	"slotbooker/internal/infra"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListServiceTypes(ctx context.Context, includeUnpublished bool) ([]*ServiceTypeView, error)
	GetServiceType(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error)
	ListRules(ctx context.Context, resourceID uuid.UUID) ([]*ScheduleRuleView, error)
}

type CatalogViewRepo interface {
	FindServiceTypes(ctx context.Context, includeUnpublished bool) ([]*ServiceTypeView, error)
	FindServiceTypeByID(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error)
	FindRulesByResource(ctx context.Context, resourceID uuid.UUID) ([]*ScheduleRuleView, error)
}

type catalogQueriesImpl struct {
	repo CatalogViewRepo
}

func NewCatalogQueries(repo CatalogViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListServiceTypes(ctx context.Context, includeUnpublished bool) ([]*ServiceTypeView, error) {
	return q.repo.FindServiceTypes(ctx, includeUnpublished)
}

func (q *catalogQueriesImpl) GetServiceType(ctx context.Context, id uuid.UUID) (*ServiceTypeView, error) {
	view, err := q.repo.FindServiceTypeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceTypeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListRules(ctx context.Context, resourceID uuid.UUID) ([]*ScheduleRuleView, error) {
	return q.repo.FindRulesByResource(ctx, resourceID)
}
