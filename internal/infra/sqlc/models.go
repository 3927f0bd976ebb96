package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CourtType struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	HourlyRate pgtype.Numeric `json:"hourly_rate"`
}

type Court struct {
	ID          int64  `json:"id"`
	CourtTypeID int64  `json:"court_type_id"`
	Name        string `json:"name"`
}

type PaymentMethod struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type Reservation struct {
	ID         int64          `json:"id"`
	ClientID   int64          `json:"client_id"`
	Total      pgtype.Numeric `json:"total"`
	ReservedOn pgtype.Date    `json:"reserved_on"`
	Status     string         `json:"status"`
}

type Slot struct {
	ID         int64       `json:"id"`
	CourtID    int64       `json:"court_id"`
	ScheduleID int64       `json:"schedule_id"`
	SlotDate   pgtype.Date `json:"slot_date"`
	Status     string      `json:"status"`
}

type IdempotencyKey struct {
	Key           uuid.UUID          `json:"key"`
	RequestHash   string             `json:"request_hash"`
	Status        string             `json:"status"`
	ReservationID pgtype.Int8        `json:"reservation_id"`
	ExpiresAt     pgtype.Timestamptz `json:"expires_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}
