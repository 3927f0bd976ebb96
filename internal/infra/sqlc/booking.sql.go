package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservation (client_id, total, reserved_on, status)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateReservationParams struct {
	ClientID   int64          `json:"client_id"`
	Total      pgtype.Numeric `json:"total"`
	ReservedOn pgtype.Date    `json:"reserved_on"`
	Status     string         `json:"status"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ClientID,
		arg.Total,
		arg.ReservedOn,
		arg.Status,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateReservationStatus = `-- name: UpdateReservationStatus :execrows
UPDATE reservation
SET status = $2, updated_at = now()
WHERE id = $1
`

type UpdateReservationStatusParams struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createSlot = `-- name: CreateSlot :one
INSERT INTO slot (court_id, schedule_id, slot_date, status)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreateSlotParams struct {
	CourtID    int64       `json:"court_id"`
	ScheduleID int64       `json:"schedule_id"`
	SlotDate   pgtype.Date `json:"slot_date"`
	Status     string      `json:"status"`
}

func (q *Queries) CreateSlot(ctx context.Context, db DBTX, arg CreateSlotParams) (int64, error) {
	row := db.QueryRow(ctx, createSlot,
		arg.CourtID,
		arg.ScheduleID,
		arg.SlotDate,
		arg.Status,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateSlotStatus = `-- name: UpdateSlotStatus :execrows
UPDATE slot
SET status = $2
WHERE id = $1
`

type UpdateSlotStatusParams struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (q *Queries) UpdateSlotStatus(ctx context.Context, db DBTX, arg UpdateSlotStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateSlotStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createReservationLine = `-- name: CreateReservationLine :one
INSERT INTO reservation_line (reservation_id, slot_id, price)
VALUES ($1, $2, $3)
RETURNING id
`

type CreateReservationLineParams struct {
	ReservationID int64          `json:"reservation_id"`
	SlotID        int64          `json:"slot_id"`
	Price         pgtype.Numeric `json:"price"`
}

func (q *Queries) CreateReservationLine(ctx context.Context, db DBTX, arg CreateReservationLineParams) (int64, error) {
	row := db.QueryRow(ctx, createReservationLine, arg.ReservationID, arg.SlotID, arg.Price)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createPayment = `-- name: CreatePayment :one
INSERT INTO payment (reservation_id, payment_method_id, paid_on, amount)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type CreatePaymentParams struct {
	ReservationID   int64              `json:"reservation_id"`
	PaymentMethodID int64              `json:"payment_method_id"`
	PaidOn          pgtype.Timestamptz `json:"paid_on"`
	Amount          pgtype.Numeric     `json:"amount"`
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) (int64, error) {
	row := db.QueryRow(ctx, createPayment,
		arg.ReservationID,
		arg.PaymentMethodID,
		arg.PaidOn,
		arg.Amount,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}
