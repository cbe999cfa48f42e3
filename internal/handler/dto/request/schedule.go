package request

import (
	"slotbooker/internal/usecase/commands"
)

type ScheduleRuleRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Available *bool  `json:"available,omitempty"`
}

func (r ScheduleRuleRequest) ToInput() commands.ScheduleRuleInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return commands.ScheduleRuleInput{
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Available: available,
	}
}

type ReplaceScheduleRequest struct {
	Rules []ScheduleRuleRequest `json:"rules" binding:"required,dive"`
}

func (r ReplaceScheduleRequest) ToInputs() []commands.ScheduleRuleInput {
	inputs := make([]commands.ScheduleRuleInput, 0, len(r.Rules))
	for _, rule := range r.Rules {
		inputs = append(inputs, rule.ToInput())
	}
	return inputs
}
