package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct {
	dbtx db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{dbtx: dbtx}
}

const paymentViewSQL = `
SELECT id, booking_id, amount_cents, currency, provider, status, provider_ref, created_at
FROM payments
WHERE id = $1`

func (s *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	var (
		view        queries.PaymentView
		providerRef pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := s.dbtx.QueryRow(ctx, paymentViewSQL, id).Scan(
		&view.ID, &view.BookingID, &view.AmountCents, &view.Currency,
		&view.Provider, &view.Status, &providerRef, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	view.ProviderRef = pgconv.StringPtrFromPgtype(providerRef)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
