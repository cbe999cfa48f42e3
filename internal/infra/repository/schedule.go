package repository

import (
	"context"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"

	"github.com/google/uuid"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

const createScheduleSQL = `
INSERT INTO schedules (id, resource_id, day_of_week, start_time, end_time, is_unavailable)
VALUES ($1, $2, $3, $4::time, $5::time, $6)
RETURNING id`

func (r *ScheduleRepository) Create(ctx context.Context, tx db.DBTX, rule *schedule.Rule) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createScheduleSQL,
		rule.ID(),
		rule.ResourceID(),
		rule.DayOfWeek(),
		rule.Start().String(),
		rule.End().String(),
		rule.Unavailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule rule", err)
	}
	return id, nil
}

const deleteScheduleSQL = `DELETE FROM schedules WHERE id = $1`

func (r *ScheduleRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteScheduleSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete schedule rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "schedule rule not found")
	}
	return nil
}

const deleteSchedulesForResourceSQL = `DELETE FROM schedules WHERE resource_id = $1`

// ReplaceForResource relies on being called inside a transaction; the delete
// and the re-inserts must land atomically.
func (r *ScheduleRepository) ReplaceForResource(ctx context.Context, tx db.DBTX, resourceID uuid.UUID, rules []*schedule.Rule) error {
	if _, err := tx.Exec(ctx, deleteSchedulesForResourceSQL, resourceID); err != nil {
		return infra.WrapRepoErr("failed to clear schedule rules", err)
	}
	for _, rule := range rules {
		if _, err := r.Create(ctx, tx, rule); err != nil {
			return err
		}
	}
	return nil
}
