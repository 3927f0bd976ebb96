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

// Reference rows created by SeedReferenceData. Identities restart on every
// reset, so the ids are stable.
const (
	CourtTypeFutbol int64 = 1
	CourtTypePadel  int64 = 2

	CourtFutbol int64 = 1
	CourtPadel  int64 = 2

	ScheduleEvening int64 = 1 // 18:00-19:00
	ScheduleNight   int64 = 2 // 19:00-20:00
	ScheduleLate    int64 = 3 // 20:00-21:00

	ClientAna   int64 = 1
	ClientBruno int64 = 2

	PaymentCash     int64 = 1 // Efectivo
	PaymentCard     int64 = 2 // Tarjeta
	PaymentTransfer int64 = 3 // Transferencia

	FutbolHourlyRate = "250.00"
	PadelHourlyRate  = "175.50"
)

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`INSERT INTO court_type (name, hourly_rate) VALUES
		    ('Fútbol 5', 250.00),
		    ('Pádel', 175.50)
		ON CONFLICT (name) DO NOTHING;`,
		`INSERT INTO court (court_type_id, name) VALUES
		    (1, 'Cancha 1'),
		    (2, 'Cancha Pádel')
		ON CONFLICT (name) DO NOTHING;`,
		`INSERT INTO schedule (starts_at, ends_at) VALUES
		    ('18:00', '19:00'),
		    ('19:00', '20:00'),
		    ('20:00', '21:00')
		ON CONFLICT (starts_at, ends_at) DO NOTHING;`,
		`INSERT INTO client (full_name, email, phone) VALUES
		    ('Ana Torres', 'ana@example.com', '+54 11 5555 0001'),
		    ('Bruno Díaz', 'bruno@example.com', NULL)
		ON CONFLICT (email) DO NOTHING;`,
		`INSERT INTO payment_method (description) VALUES
		    ('Efectivo'),
		    ('Tarjeta'),
		    ('Transferencia')
		ON CONFLICT (description) DO NOTHING;`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// InsertReservation writes a reservation with one slot per schedule on date,
// bypassing the booking rules so tests can create past-dated data.
func InsertReservation(t *testing.T, db DBLike, clientID int64, status string, date time.Time, courtID int64, scheduleIDs ...int64) (int64, []int64) {
	t.Helper()
	ctx := context.Background()

	var reservationID int64
	err := db.QueryRow(ctx,
		"INSERT INTO reservation (client_id, total, reserved_on, status) VALUES ($1, $2::int * 250.00, $3, $4) RETURNING id",
		clientID, len(scheduleIDs), date.AddDate(0, 0, -1), status).Scan(&reservationID)
	require.NoError(t, err)

	slotStatus := "unavailable"
	if status == "cancelled" {
		slotStatus = "available"
	}

	slotIDs := make([]int64, 0, len(scheduleIDs))
	for _, scheduleID := range scheduleIDs {
		var slotID int64
		err := db.QueryRow(ctx,
			"INSERT INTO slot (court_id, schedule_id, slot_date, status) VALUES ($1, $2, $3, $4) RETURNING id",
			courtID, scheduleID, date, slotStatus).Scan(&slotID)
		require.NoError(t, err)
		_, err = db.Exec(ctx,
			"INSERT INTO reservation_line (reservation_id, slot_id, price) VALUES ($1, $2, 250.00)",
			reservationID, slotID)
		require.NoError(t, err)
		slotIDs = append(slotIDs, slotID)
	}
	return reservationID, slotIDs
}

func InsertIdempotencyKey(t *testing.T, db DBLike, key uuid.UUID, status string, reservationID *int64, expiresAt time.Time) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO idempotency_key (key, request_hash, status, reservation_id, expires_at) VALUES ($1, 'seeded', $2, $3, $4)",
		key, status, reservationID, expiresAt)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReservationStatus(t *testing.T, db DBLike, id int64) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservation WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func SlotStatus(t *testing.T, db DBLike, id int64) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM slot WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
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
