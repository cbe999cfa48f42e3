//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"slotbooker/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind every staff account the fixtures create.
const TestPassword = "password123"

func CreateTestCustomer(t *testing.T, db DBLike, email, fullName, role string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err)

	tag, err := db.Exec(ctx, "INSERT INTO customers (id, email, full_name, password_hash, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		customerID, email, fullName, hash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func CreateTestResource(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO resources (id, name) VALUES ($1, $2)", resourceID, name)
	require.NoError(t, err)

	return resourceID
}

func CreateTestServiceType(t *testing.T, db DBLike, name string, durationMinutes, capacity int, priceCents int64, resourceID *uuid.UUID) uuid.UUID {
	t.Helper()

	serviceTypeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO service_types (id, name, duration_minutes, capacity, published, requires_confirmation, price_cents, currency, resource_id)
		VALUES ($1, $2, $3, $4, true, false, $5, 'INR', $6)`,
		serviceTypeID, name, durationMinutes, capacity, priceCents, resourceID)
	require.NoError(t, err)

	return serviceTypeID
}

func CreateTestScheduleRule(t *testing.T, db DBLike, resourceID uuid.UUID, dayOfWeek int, start, end string, unavailable bool) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO schedules (id, resource_id, day_of_week, start_time, end_time, is_unavailable) VALUES ($1, $2, $3, $4, $5, $6)",
		ruleID, resourceID, dayOfWeek, start, end, unavailable)
	require.NoError(t, err)

	return ruleID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO customers (id, email, full_name, password_hash, role) VALUES
		    (gen_random_uuid(), 'seed-organiser@example.com', 'Seed Organiser', '', 'organiser')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
