package shared

import (
	"context"
	"time"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	"donbalon/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one write transaction; rolled back on any error, never retried
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Slots() SlotRepository
	Lines() LineRepository
	Payments() PaymentRepository
	IdempotencyKeys() IdempotencyKeyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PaymentMethodByID(ctx context.Context, id int64) (*PaymentMethodSnapshot, error)
	CourtByID(ctx context.Context, id int64) (*CourtSnapshot, error)
	CourtTypeByID(ctx context.Context, id int64) (*CourtTypeSnapshot, error)
	SlotByKey(ctx context.Context, key slot.Key) (*SlotSnapshot, error)
	// ReservationByIDForUpdate locks the row until the surrounding transaction ends.
	ReservationByIDForUpdate(ctx context.Context, id int64) (*ReservationSnapshot, error)
	SlotsByReservation(ctx context.Context, reservationID int64) ([]SlotSnapshot, error)
	AvailableSlotsBefore(ctx context.Context, date time.Time) ([]SlotSnapshot, error)
	// OpenReservationsEndedBefore lists pending or paid reservations whose last slot date is before date.
	OpenReservationsEndedBefore(ctx context.Context, date time.Time) ([]int64, error)
	IdempotencyKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status reservation.Status) error
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status slot.Status) error
}

type LineRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, line reservation.Line) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, payment reservation.Payment) (int64, error)
}

type IdempotencyKeyRepository interface {
	// Claim reports false when an unexpired record for key already exists.
	Claim(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, reservationID int64) error
	Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}
