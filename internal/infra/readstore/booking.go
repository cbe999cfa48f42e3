package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

const bookingViewSQL = `
SELECT b.id, b.service_type_id, st.name, b.customer_id, c.email,
       b.start_time, b.end_time, b.status, b.payment_status, b.created_at
FROM bookings b
JOIN service_types st ON st.id = b.service_type_id
JOIN customers c ON c.id = b.customer_id
WHERE b.id = $1`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.dbtx.QueryRow(ctx, bookingViewSQL, id)
	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

const bookingsByCustomerEmailSQL = `
SELECT b.id, b.service_type_id, st.name, b.customer_id, c.email,
       b.start_time, b.end_time, b.status, b.payment_status, b.created_at
FROM bookings b
JOIN service_types st ON st.id = b.service_type_id
JOIN customers c ON c.id = b.customer_id
WHERE c.email = $1
ORDER BY b.start_time DESC
LIMIT $2 OFFSET $3`

func (s *BookingReadStore) FindByCustomerEmail(ctx context.Context, email string, limit, offset int32) ([]*queries.BookingView, error) {
	rows, err := s.dbtx.Query(ctx, bookingsByCustomerEmailSQL, email, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

const bookingStatsSQL = `
SELECT b.status, count(*),
       COALESCE(SUM(p.amount_cents) FILTER (WHERE p.status = 'succeeded'), 0)
FROM bookings b
LEFT JOIN payments p ON p.booking_id = b.id
GROUP BY b.status`

func (s *BookingReadStore) Stats(ctx context.Context) (*queries.BookingStatsView, error) {
	rows, err := s.dbtx.Query(ctx, bookingStatsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking stats", err)
	}
	defer rows.Close()

	stats := &queries.BookingStatsView{ByStatus: make(map[string]int64)}
	for rows.Next() {
		var (
			status  string
			count   int64
			revenue int64
		)
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking stats", err)
		}
		stats.ByStatus[status] = count
		stats.TotalBookings += count
		stats.PaidRevenueCents += revenue
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking stats", err)
	}
	return stats, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ServiceTypeID, &view.ServiceTypeName,
		&view.CustomerID, &view.CustomerEmail,
		&view.StartTime, &view.EndTime, &view.Status, &view.PaymentStatus, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
