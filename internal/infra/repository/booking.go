package repository

import (
	"context"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, customer_id, service_type_id, resource_id, start_time, end_time, status, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.CustomerID(),
		b.ServiceTypeID(),
		pgconv.UUIDPtrToPgtype(b.ResourceID()),
		b.StartTime(),
		b.EndTime(),
		b.Status().String(),
		b.PaymentStatus().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

const updateBookingPaymentStatusSQL = `
UPDATE bookings SET payment_status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.PaymentStatus) error {
	tag, err := tx.Exec(ctx, updateBookingPaymentStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}
