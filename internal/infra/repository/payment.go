package repository

import (
	"context"

	"slotbooker/internal/domain/payment"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const createPaymentSQL = `
INSERT INTO payments (id, booking_id, amount_cents, currency, provider, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPaymentSQL,
		p.ID(),
		p.BookingID(),
		p.AmountCents(),
		p.Currency(),
		p.Provider(),
		p.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}

const updatePaymentStatusSQL = `
UPDATE payments
SET status = $2, provider_ref = COALESCE($3, provider_ref), updated_at = now()
WHERE id = $1`

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status payment.Status, providerRef *string) error {
	tag, err := tx.Exec(ctx, updatePaymentStatusSQL, id, status.String(), pgconv.StringPtrToPgtype(providerRef))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "payment not found")
	}
	return nil
}
