package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getReservationDetail = `-- name: GetReservationDetail :one
SELECT r.id, r.client_id, c.full_name AS client_name, r.total, r.reserved_on, r.status
FROM reservation r
JOIN client c ON c.id = r.client_id
WHERE r.id = $1
`

type GetReservationDetailRow struct {
	ID         int64          `json:"id"`
	ClientID   int64          `json:"client_id"`
	ClientName string         `json:"client_name"`
	Total      pgtype.Numeric `json:"total"`
	ReservedOn pgtype.Date    `json:"reserved_on"`
	Status     string         `json:"status"`
}

func (q *Queries) GetReservationDetail(ctx context.Context, db DBTX, id int64) (GetReservationDetailRow, error) {
	row := db.QueryRow(ctx, getReservationDetail, id)
	var i GetReservationDetailRow
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.ClientName,
		&i.Total,
		&i.ReservedOn,
		&i.Status,
	)
	return i, err
}

const listReservationLines = `-- name: ListReservationLines :many
SELECT rl.id, rl.slot_id, s.court_id, co.name AS court_name, s.schedule_id,
       sc.starts_at, sc.ends_at, s.slot_date, s.status AS slot_status, rl.price
FROM reservation_line rl
JOIN slot s ON s.id = rl.slot_id
JOIN court co ON co.id = s.court_id
JOIN schedule sc ON sc.id = s.schedule_id
WHERE rl.reservation_id = $1
ORDER BY s.slot_date, sc.starts_at, rl.id
`

type ListReservationLinesRow struct {
	ID         int64          `json:"id"`
	SlotID     int64          `json:"slot_id"`
	CourtID    int64          `json:"court_id"`
	CourtName  string         `json:"court_name"`
	ScheduleID int64          `json:"schedule_id"`
	StartsAt   pgtype.Time    `json:"starts_at"`
	EndsAt     pgtype.Time    `json:"ends_at"`
	SlotDate   pgtype.Date    `json:"slot_date"`
	SlotStatus string         `json:"slot_status"`
	Price      pgtype.Numeric `json:"price"`
}

func (q *Queries) ListReservationLines(ctx context.Context, db DBTX, reservationID int64) ([]ListReservationLinesRow, error) {
	rows, err := db.Query(ctx, listReservationLines, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReservationLinesRow
	for rows.Next() {
		var i ListReservationLinesRow
		if err := rows.Scan(
			&i.ID,
			&i.SlotID,
			&i.CourtID,
			&i.CourtName,
			&i.ScheduleID,
			&i.StartsAt,
			&i.EndsAt,
			&i.SlotDate,
			&i.SlotStatus,
			&i.Price,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPaymentByReservation = `-- name: GetPaymentByReservation :one
SELECT p.id, p.payment_method_id, pm.description AS payment_method, p.paid_on, p.amount
FROM payment p
JOIN payment_method pm ON pm.id = p.payment_method_id
WHERE p.reservation_id = $1
ORDER BY p.id DESC
LIMIT 1
`

type GetPaymentByReservationRow struct {
	ID              int64              `json:"id"`
	PaymentMethodID int64              `json:"payment_method_id"`
	PaymentMethod   string             `json:"payment_method"`
	PaidOn          pgtype.Timestamptz `json:"paid_on"`
	Amount          pgtype.Numeric     `json:"amount"`
}

func (q *Queries) GetPaymentByReservation(ctx context.Context, db DBTX, reservationID int64) (GetPaymentByReservationRow, error) {
	row := db.QueryRow(ctx, getPaymentByReservation, reservationID)
	var i GetPaymentByReservationRow
	err := row.Scan(
		&i.ID,
		&i.PaymentMethodID,
		&i.PaymentMethod,
		&i.PaidOn,
		&i.Amount,
	)
	return i, err
}

const listReservationsByClientFirstPage = `-- name: ListReservationsByClientFirstPage :many
SELECT r.id, r.total, r.reserved_on, r.status,
       (SELECT count(*) FROM reservation_line rl WHERE rl.reservation_id = r.id)::int AS line_count
FROM reservation r
WHERE r.client_id = $1
ORDER BY r.reserved_on DESC, r.id DESC
LIMIT $2
`

type ListReservationsByClientFirstPageParams struct {
	ClientID int64 `json:"client_id"`
	Limit    int32 `json:"limit"`
}

type ListReservationsByClientRow struct {
	ID         int64          `json:"id"`
	Total      pgtype.Numeric `json:"total"`
	ReservedOn pgtype.Date    `json:"reserved_on"`
	Status     string         `json:"status"`
	LineCount  int32          `json:"line_count"`
}

func (q *Queries) ListReservationsByClientFirstPage(ctx context.Context, db DBTX, arg ListReservationsByClientFirstPageParams) ([]ListReservationsByClientRow, error) {
	return q.scanReservationList(ctx, db, listReservationsByClientFirstPage, arg.ClientID, arg.Limit)
}

const listReservationsByClientKeyset = `-- name: ListReservationsByClientKeyset :many
SELECT r.id, r.total, r.reserved_on, r.status,
       (SELECT count(*) FROM reservation_line rl WHERE rl.reservation_id = r.id)::int AS line_count
FROM reservation r
WHERE r.client_id = $1
  AND (r.reserved_on, r.id) < ($2::date, $3::bigint)
ORDER BY r.reserved_on DESC, r.id DESC
LIMIT $4
`

type ListReservationsByClientKeysetParams struct {
	ClientID       int64       `json:"client_id"`
	LastReservedOn pgtype.Date `json:"last_reserved_on"`
	LastID         int64       `json:"last_id"`
	Limit          int32       `json:"limit"`
}

func (q *Queries) ListReservationsByClientKeyset(ctx context.Context, db DBTX, arg ListReservationsByClientKeysetParams) ([]ListReservationsByClientRow, error) {
	return q.scanReservationList(ctx, db, listReservationsByClientKeyset,
		arg.ClientID,
		arg.LastReservedOn,
		arg.LastID,
		arg.Limit,
	)
}

func (q *Queries) scanReservationList(ctx context.Context, db DBTX, query string, args ...interface{}) ([]ListReservationsByClientRow, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReservationsByClientRow
	for rows.Next() {
		var i ListReservationsByClientRow
		if err := rows.Scan(
			&i.ID,
			&i.Total,
			&i.ReservedOn,
			&i.Status,
			&i.LineCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getCourtWithType = `-- name: GetCourtWithType :one
SELECT co.id, co.name, ct.name AS court_type, ct.hourly_rate
FROM court co
JOIN court_type ct ON ct.id = co.court_type_id
WHERE co.id = $1
`

type GetCourtWithTypeRow struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	CourtType  string         `json:"court_type"`
	HourlyRate pgtype.Numeric `json:"hourly_rate"`
}

func (q *Queries) GetCourtWithType(ctx context.Context, db DBTX, id int64) (GetCourtWithTypeRow, error) {
	row := db.QueryRow(ctx, getCourtWithType, id)
	var i GetCourtWithTypeRow
	err := row.Scan(&i.ID, &i.Name, &i.CourtType, &i.HourlyRate)
	return i, err
}

const listCourtDaySchedules = `-- name: ListCourtDaySchedules :many
SELECT sc.id AS schedule_id, sc.starts_at, sc.ends_at, s.id AS slot_id, s.status AS slot_status
FROM schedule sc
LEFT JOIN slot s ON s.schedule_id = sc.id AND s.court_id = $1 AND s.slot_date = $2
ORDER BY sc.starts_at
`

type ListCourtDaySchedulesParams struct {
	CourtID  int64       `json:"court_id"`
	SlotDate pgtype.Date `json:"slot_date"`
}

type ListCourtDaySchedulesRow struct {
	ScheduleID int64       `json:"schedule_id"`
	StartsAt   pgtype.Time `json:"starts_at"`
	EndsAt     pgtype.Time `json:"ends_at"`
	SlotID     pgtype.Int8 `json:"slot_id"`
	SlotStatus pgtype.Text `json:"slot_status"`
}

func (q *Queries) ListCourtDaySchedules(ctx context.Context, db DBTX, arg ListCourtDaySchedulesParams) ([]ListCourtDaySchedulesRow, error) {
	rows, err := db.Query(ctx, listCourtDaySchedules, arg.CourtID, arg.SlotDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCourtDaySchedulesRow
	for rows.Next() {
		var i ListCourtDaySchedulesRow
		if err := rows.Scan(
			&i.ScheduleID,
			&i.StartsAt,
			&i.EndsAt,
			&i.SlotID,
			&i.SlotStatus,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
