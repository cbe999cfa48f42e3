package request

import (
	"slotbooker/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateServiceTypeRequest struct {
	Name                 string     `json:"name" binding:"required,max=200"`
	DurationMinutes      int        `json:"duration_minutes" binding:"required,min=1"`
	Capacity             int        `json:"capacity" binding:"omitempty,min=1"`
	RequiresConfirmation bool       `json:"requires_confirmation"`
	PriceCents           *int64     `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Currency             string     `json:"currency" binding:"omitempty,len=3"`
	ResourceID           *uuid.UUID `json:"resource_id,omitempty"`
}

func (r CreateServiceTypeRequest) ToCommand() commands.CreateServiceTypeRequest {
	return commands.CreateServiceTypeRequest{
		Name:                 r.Name,
		DurationMinutes:      r.DurationMinutes,
		Capacity:             r.Capacity,
		RequiresConfirmation: r.RequiresConfirmation,
		PriceCents:           r.PriceCents,
		Currency:             r.Currency,
		ResourceID:           r.ResourceID,
	}
}

type UpdateServiceTypeRequest struct {
	Name            string `json:"name" binding:"omitempty,max=200"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	Capacity        int    `json:"capacity" binding:"required,min=1"`
	PriceCents      *int64 `json:"price_cents,omitempty" binding:"omitempty,min=0"`
}

func (r UpdateServiceTypeRequest) ToCommand() commands.UpdateServiceTypeRequest {
	return commands.UpdateServiceTypeRequest{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Capacity:        r.Capacity,
		PriceCents:      r.PriceCents,
	}
}

type PublishServiceTypeRequest struct {
	Published *bool `json:"published" binding:"required"`
}
