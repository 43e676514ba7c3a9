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

	"canchacontrol/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	testHashOnce sync.Once
	testHash     string
)

// testPasswordHash is the bcrypt hash of "password123", computed once per
// process so every seeded user can log in with the same password.
func testPasswordHash(t *testing.T) string {
	t.Helper()
	testHashOnce.Do(func() {
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		testHash = hash
	})
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestField(t *testing.T, db DBLike, name string, hourlyRateCents int64, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	fieldID := uuid.New()
	ctx := context.Background()
	now := time.Now().UTC()

	tag, err := db.Exec(ctx,
		`INSERT INTO fields (id, name, type, hourly_rate_cents, capacity, indoor, created_by, updated_by, created_at, updated_at)
		 VALUES ($1, $2, 'futbol5', $3, 10, false, $4, $4, $5, $5)
		 ON CONFLICT (name) DO NOTHING`,
		fieldID, name, hourlyRateCents, createdBy, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM fields WHERE name = $1", name).Scan(&fieldID)
	}

	return fieldID
}

func CreateTestReservation(t *testing.T, db DBLike, fieldID, createdBy uuid.UUID, date string, startMin, endMin int, status string, priceCents int64) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := db.Exec(ctx,
		`INSERT INTO reservations (id, field_id, client_name, reservation_date, start_min, end_min, total_price_cents, payment_status, created_by, created_at, updated_at)
		 VALUES ($1, $2, 'Seeded Client', $3, $4, $5, $6, $7, $8, $9, $9)`,
		reservationID, fieldID, date, startMin, endMin, priceCents, status, createdBy, now)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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

	return nil
}
