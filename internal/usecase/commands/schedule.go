package commands

import (
	"context"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound = errs.New("resource not found")
	ErrScheduleNotFound = errs.New("schedule rule not found")
)

type ScheduleRuleInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
	Available bool
}

type ScheduleCommands interface {
	CreateRule(ctx context.Context, resourceID uuid.UUID, in ScheduleRuleInput) (uuid.UUID, error)
	DeleteRule(ctx context.Context, ruleID uuid.UUID) error
	ReplaceRules(ctx context.Context, resourceID uuid.UUID, inputs []ScheduleRuleInput) error
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleUseCase(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow}
}

func (uc *scheduleUseCaseImpl) CreateRule(ctx context.Context, resourceID uuid.UUID, in ScheduleRuleInput) (uuid.UUID, error) {
	rule, err := buildRule(resourceID, in)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Schedules().Create(ctx, tx.DB(), rule)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindForeignKeyViolated) {
				return ErrResourceNotFound
			}
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *scheduleUseCaseImpl) DeleteRule(ctx context.Context, ruleID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Schedules().Delete(ctx, tx.DB(), ruleID)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrScheduleNotFound
	}
	return err
}

// ReplaceRules swaps a resource's whole weekly plan atomically so readers
// never observe a half-applied schedule.
func (uc *scheduleUseCaseImpl) ReplaceRules(ctx context.Context, resourceID uuid.UUID, inputs []ScheduleRuleInput) error {
	rules := make([]*schedule.Rule, 0, len(inputs))
	for _, in := range inputs {
		rule, err := buildRule(resourceID, in)
		if err != nil {
			return err
		}
		rules = append(rules, rule)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Schedules().ReplaceForResource(ctx, tx.DB(), resourceID, rules)
	})
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrResourceNotFound
	}
	return err
}

func buildRule(resourceID uuid.UUID, in ScheduleRuleInput) (*schedule.Rule, error) {
	start, err := schedule.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, err
	}
	return schedule.NewRule(resourceID, in.DayOfWeek, start, end, !in.Available)
}
