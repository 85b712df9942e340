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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", shared by every seeded account so tests can
// log in through the real auth endpoint.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, '555-0000', true)
		ON CONFLICT DO NOTHING`,
		userID, "Test User", email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func SetUserLoyaltyPoints(t *testing.T, db DBLike, userID uuid.UUID, points int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE users SET loyalty_points = $2 WHERE id = $1", userID, points)
	require.NoError(t, err)
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMinutes, price int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO services (id, name, description, duration_minutes, price, category, is_active)
		VALUES ($1, $2, '', $3, $4, 'general', true)`,
		serviceID, name, durationMinutes, price)
	require.NoError(t, err)

	return serviceID
}

func CreateTestLocation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO locations (id, name, address, timezone, slot_interval_minutes, is_active)
		VALUES ($1, $2, '1 Test St', 'UTC', 30, true)`,
		locationID, name)
	require.NoError(t, err)

	return locationID
}

func DeactivateService(t *testing.T, db DBLike, serviceID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE services SET is_active = false WHERE id = $1", serviceID)
	require.NoError(t, err)
}

// SeedReferenceData exists for symmetry with ResetDB; the schema carries no
// mandatory reference rows, so each test seeds exactly what it needs.
func SeedReferenceData(pool *pgxpool.Pool) error {
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
