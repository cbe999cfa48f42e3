package readstore

import (
	"context"
	"time"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReadStore serves the minimal snapshots the write side validates
// against. Constructed over a transaction it observes that transaction's
// snapshot, which is what capacity recounts depend on.
type CommandReadStore struct {
	dbtx db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{dbtx: dbtx}
}

const serviceTypeSnapshotSQL = `
SELECT id, resource_id, name, duration_minutes, capacity, published, requires_confirmation, price_cents, currency
FROM service_types
WHERE id = $1`

func (s *CommandReadStore) ServiceTypeByID(ctx context.Context, id uuid.UUID) (*shared.ServiceTypeSnapshot, error) {
	var (
		snap       shared.ServiceTypeSnapshot
		resourceID pgtype.UUID
		priceCents pgtype.Int8
	)
	err := s.dbtx.QueryRow(ctx, serviceTypeSnapshotSQL, id).Scan(
		&snap.ID, &resourceID, &snap.Name, &snap.DurationMinutes, &snap.Capacity,
		&snap.Published, &snap.RequiresConfirmation, &priceCents, &snap.Currency,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service type", err)
	}
	snap.ResourceID = pgconv.UUIDPtrFromPgtype(resourceID)
	snap.PriceCents = pgconv.Int64PtrFromPgtype(priceCents)
	return &snap, nil
}

const bookingSnapshotSQL = `
SELECT id, service_type_id, customer_id, start_time, end_time, status, payment_status
FROM bookings
WHERE id = $1`

func (s *CommandReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := s.dbtx.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.ServiceTypeID, &snap.CustomerID,
		&snap.StartTime, &snap.EndTime, &snap.Status, &snap.PaymentStatus,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &snap, nil
}

const paymentSnapshotSQL = `
SELECT id, booking_id, amount_cents, currency, status
FROM payments
WHERE id = $1`

func (s *CommandReadStore) PaymentByID(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	var snap shared.PaymentSnapshot
	err := s.dbtx.QueryRow(ctx, paymentSnapshotSQL, id).Scan(
		&snap.ID, &snap.BookingID, &snap.AmountCents, &snap.Currency, &snap.Status,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return &snap, nil
}

const customerByEmailSQL = `
SELECT id, email, full_name, role
FROM customers
WHERE email = $1`

func (s *CommandReadStore) CustomerByEmail(ctx context.Context, email string) (*shared.CustomerSnapshot, error) {
	var snap shared.CustomerSnapshot
	err := s.dbtx.QueryRow(ctx, customerByEmailSQL, email).Scan(
		&snap.ID, &snap.Email, &snap.FullName, &snap.Role,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	return &snap, nil
}

const rulesForResourceSQL = `
SELECT id, resource_id, day_of_week, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), is_unavailable
FROM schedules
WHERE resource_id = $1
ORDER BY day_of_week, start_time`

func (s *CommandReadStore) RulesForResource(ctx context.Context, resourceID uuid.UUID) ([]shared.RuleSnapshot, error) {
	rows, err := s.dbtx.Query(ctx, rulesForResourceSQL, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule rules", err)
	}
	defer rows.Close()

	var snaps []shared.RuleSnapshot
	for rows.Next() {
		var (
			snap        shared.RuleSnapshot
			unavailable bool
		)
		if err := rows.Scan(&snap.ID, &snap.ResourceID, &snap.DayOfWeek, &snap.StartTime, &snap.EndTime, &unavailable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule rule", err)
		}
		snap.Available = !unavailable
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedule rules", err)
	}
	return snaps, nil
}

const activeBookingCountSQL = `
SELECT count(*)
FROM bookings
WHERE service_type_id = $1 AND start_time = $2 AND status <> 'cancelled'`

func (s *CommandReadStore) ActiveBookingCount(ctx context.Context, serviceTypeID uuid.UUID, startTime time.Time) (int, error) {
	var count int
	if err := s.dbtx.QueryRow(ctx, activeBookingCountSQL, serviceTypeID, startTime).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return count, nil
}

const paymentCountForBookingSQL = `
SELECT count(*) FROM payments WHERE booking_id = $1`

func (s *CommandReadStore) PaymentCountForBooking(ctx context.Context, bookingID uuid.UUID) (int, error) {
	var count int
	if err := s.dbtx.QueryRow(ctx, paymentCountForBookingSQL, bookingID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count payments", err)
	}
	return count, nil
}

const hasBookingsForServiceTypeSQL = `
SELECT EXISTS (SELECT 1 FROM bookings WHERE service_type_id = $1)`

func (s *CommandReadStore) HasBookingsForServiceType(ctx context.Context, serviceTypeID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.dbtx.QueryRow(ctx, hasBookingsForServiceTypeSQL, serviceTypeID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check bookings for service type", err)
	}
	return exists, nil
}
