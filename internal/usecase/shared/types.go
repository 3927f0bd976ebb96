package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots; commands never depend on read-side view types.

type PaymentMethodSnapshot struct {
	ID          int64
	Description string
}

type CourtSnapshot struct {
	ID          int64
	Name        string
	CourtTypeID int64
}

type CourtTypeSnapshot struct {
	ID         int64
	Name       string
	HourlyRate decimal.Decimal
}

type SlotSnapshot struct {
	ID         int64
	CourtID    int64
	ScheduleID int64
	Date       time.Time
	Status     string
}

type ReservationSnapshot struct {
	ID         int64
	ClientID   int64
	Total      decimal.Decimal
	ReservedOn time.Time
	Status     string
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key           uuid.UUID
	RequestHash   string
	Status        string
	ReservationID *int64
	ExpiresAt     time.Time
}
