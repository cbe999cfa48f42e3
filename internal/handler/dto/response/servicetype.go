package response

import (
	"time"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceTypeResponse struct {
	ID                   uuid.UUID  `json:"id"`
	ResourceID           *uuid.UUID `json:"resourceId,omitempty"`
	Name                 string     `json:"name"`
	DurationMinutes      int        `json:"durationMinutes"`
	Capacity             int        `json:"capacity"`
	Published            bool       `json:"published"`
	RequiresConfirmation bool       `json:"requiresConfirmation"`
	PriceCents           *int64     `json:"priceCents,omitempty"`
	Currency             string     `json:"currency"`
	CreatedAt            time.Time  `json:"createdAt"`
}

func FromServiceTypeView(view *queries.ServiceTypeView) *ServiceTypeResponse {
	var resp ServiceTypeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceTypeViews(views []*queries.ServiceTypeView) []*ServiceTypeResponse {
	resps := make([]*ServiceTypeResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromServiceTypeView(view))
	}
	return resps
}

type ScheduleRuleResponse struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resourceId"`
	DayOfWeek  int       `json:"dayOfWeek"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Available  bool      `json:"available"`
}

func FromScheduleRuleViews(views []*queries.ScheduleRuleView) []*ScheduleRuleResponse {
	resps := make([]*ScheduleRuleResponse, 0, len(views))
	for _, view := range views {
		var resp ScheduleRuleResponse
		_ = copier.Copy(&resp, view)
		resps = append(resps, &resp)
	}
	return resps
}
