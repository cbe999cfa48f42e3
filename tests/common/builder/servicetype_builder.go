//go:build unit || e2e

package builder

import (
	"time"

	domsvc "slotbooker/internal/domain/servicetype"
	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceTypeBuilder struct {
	ID                   uuid.UUID
	ResourceID           *uuid.UUID
	Name                 string
	DurationMinutes      int
	Capacity             int
	Published            bool
	RequiresConfirmation bool
	PriceCents           *int64
	Currency             string
	CreatedAt            time.Time
}

func NewServiceTypeBuilder() *ServiceTypeBuilder {
	resourceID := uuid.New()
	price := int64(1000)
	return &ServiceTypeBuilder{
		ID:                   uuid.New(),
		ResourceID:           &resourceID,
		Name:                 "Deep Tissue Massage",
		DurationMinutes:      60,
		Capacity:             3,
		Published:            true,
		RequiresConfirmation: false,
		PriceCents:           &price,
		Currency:             "INR",
		CreatedAt:            time.Now(),
	}
}

func (b *ServiceTypeBuilder) With(mutate func(*ServiceTypeBuilder)) *ServiceTypeBuilder {
	mutate(b)
	return b
}

func (b *ServiceTypeBuilder) BuildDomain() (*domsvc.ServiceType, error) {
	return domsvc.New(b.Name, b.DurationMinutes, b.Capacity, b.RequiresConfirmation, b.PriceCents, b.Currency, b.ResourceID)
}

func (b *ServiceTypeBuilder) BuildSnapshot() *shared.ServiceTypeSnapshot {
	return &shared.ServiceTypeSnapshot{
		ID:                   b.ID,
		ResourceID:           b.ResourceID,
		Name:                 b.Name,
		DurationMinutes:      b.DurationMinutes,
		Capacity:             b.Capacity,
		Published:            b.Published,
		RequiresConfirmation: b.RequiresConfirmation,
		PriceCents:           b.PriceCents,
		Currency:             b.Currency,
	}
}

func (b *ServiceTypeBuilder) BuildView() *queries.ServiceTypeView {
	return &queries.ServiceTypeView{
		ID:                   b.ID,
		ResourceID:           b.ResourceID,
		Name:                 b.Name,
		DurationMinutes:      b.DurationMinutes,
		Capacity:             b.Capacity,
		Published:            b.Published,
		RequiresConfirmation: b.RequiresConfirmation,
		PriceCents:           b.PriceCents,
		Currency:             b.Currency,
		CreatedAt:            b.CreatedAt,
	}
}

func (b *ServiceTypeBuilder) BuildCreateRequestDTO() reqdto.CreateServiceTypeRequest {
	return reqdto.CreateServiceTypeRequest{
		Name:                 b.Name,
		DurationMinutes:      b.DurationMinutes,
		Capacity:             b.Capacity,
		RequiresConfirmation: b.RequiresConfirmation,
		PriceCents:           b.PriceCents,
		Currency:             b.Currency,
		ResourceID:           b.ResourceID,
	}
}
