package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getPaymentMethodByID = `-- name: GetPaymentMethodByID :one
SELECT id, description FROM payment_method WHERE id = $1
`

func (q *Queries) GetPaymentMethodByID(ctx context.Context, db DBTX, id int64) (PaymentMethod, error) {
	row := db.QueryRow(ctx, getPaymentMethodByID, id)
	var i PaymentMethod
	err := row.Scan(&i.ID, &i.Description)
	return i, err
}

const getCourtByID = `-- name: GetCourtByID :one
SELECT id, court_type_id, name FROM court WHERE id = $1
`

func (q *Queries) GetCourtByID(ctx context.Context, db DBTX, id int64) (Court, error) {
	row := db.QueryRow(ctx, getCourtByID, id)
	var i Court
	err := row.Scan(&i.ID, &i.CourtTypeID, &i.Name)
	return i, err
}

const getCourtTypeByID = `-- name: GetCourtTypeByID :one
SELECT id, name, hourly_rate FROM court_type WHERE id = $1
`

func (q *Queries) GetCourtTypeByID(ctx context.Context, db DBTX, id int64) (CourtType, error) {
	row := db.QueryRow(ctx, getCourtTypeByID, id)
	var i CourtType
	err := row.Scan(&i.ID, &i.Name, &i.HourlyRate)
	return i, err
}

const getSlotByKey = `-- name: GetSlotByKey :one
SELECT id, court_id, schedule_id, slot_date, status
FROM slot
WHERE court_id = $1 AND schedule_id = $2 AND slot_date = $3
`

type GetSlotByKeyParams struct {
	CourtID    int64       `json:"court_id"`
	ScheduleID int64       `json:"schedule_id"`
	SlotDate   pgtype.Date `json:"slot_date"`
}

func (q *Queries) GetSlotByKey(ctx context.Context, db DBTX, arg GetSlotByKeyParams) (Slot, error) {
	row := db.QueryRow(ctx, getSlotByKey, arg.CourtID, arg.ScheduleID, arg.SlotDate)
	var i Slot
	err := row.Scan(&i.ID, &i.CourtID, &i.ScheduleID, &i.SlotDate, &i.Status)
	return i, err
}

const getReservationByIDForUpdate = `-- name: GetReservationByIDForUpdate :one
SELECT id, client_id, total, reserved_on, status
FROM reservation
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetReservationByIDForUpdate(ctx context.Context, db DBTX, id int64) (Reservation, error) {
	row := db.QueryRow(ctx, getReservationByIDForUpdate, id)
	var i Reservation
	err := row.Scan(&i.ID, &i.ClientID, &i.Total, &i.ReservedOn, &i.Status)
	return i, err
}

const listSlotsByReservation = `-- name: ListSlotsByReservation :many
SELECT s.id, s.court_id, s.schedule_id, s.slot_date, s.status
FROM slot s
JOIN reservation_line rl ON rl.slot_id = s.id
WHERE rl.reservation_id = $1
ORDER BY s.id
FOR UPDATE OF s
`

func (q *Queries) ListSlotsByReservation(ctx context.Context, db DBTX, reservationID int64) ([]Slot, error) {
	return q.scanSlots(ctx, db, listSlotsByReservation, reservationID)
}

const listAvailableSlotsBefore = `-- name: ListAvailableSlotsBefore :many
SELECT id, court_id, schedule_id, slot_date, status
FROM slot
WHERE status = 'available' AND slot_date < $1
ORDER BY slot_date, id
FOR UPDATE
`

func (q *Queries) ListAvailableSlotsBefore(ctx context.Context, db DBTX, before pgtype.Date) ([]Slot, error) {
	return q.scanSlots(ctx, db, listAvailableSlotsBefore, before)
}

func (q *Queries) scanSlots(ctx context.Context, db DBTX, query string, args ...interface{}) ([]Slot, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Slot
	for rows.Next() {
		var i Slot
		if err := rows.Scan(&i.ID, &i.CourtID, &i.ScheduleID, &i.SlotDate, &i.Status); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOpenReservationsEndedBefore = `-- name: ListOpenReservationsEndedBefore :many
SELECT r.id
FROM reservation r
JOIN reservation_line rl ON rl.reservation_id = r.id
JOIN slot s ON s.id = rl.slot_id
WHERE r.status IN ('pending', 'paid')
GROUP BY r.id
HAVING max(s.slot_date) < $1
ORDER BY r.id
`

func (q *Queries) ListOpenReservationsEndedBefore(ctx context.Context, db DBTX, before pgtype.Date) ([]int64, error) {
	rows, err := db.Query(ctx, listOpenReservationsEndedBefore, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
