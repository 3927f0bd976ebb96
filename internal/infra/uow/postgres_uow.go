package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"donbalon/internal/domain/slot"
	"donbalon/internal/infra/readstore"
	"donbalon/internal/infra/repository"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted plus the slot uniqueness constraint is enough: a concurrent insert of the same triple fails one of the two transactions.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// runInTx commits only when fn succeeds; every other exit path rolls back. Nothing is retried.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		// a fresh context so that a cancelled request still releases its locks
		rollbackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if rollbackErr := pgxTx.Rollback(rollbackCtx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}()

	tx := &pgTx{dbtx: pgxTx, q: u.q}
	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	committed = true
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	slotRepo        shared.SlotRepository
	lineRepo        shared.LineRepository
	paymentRepo     shared.PaymentRepository
	idempotencyRepo shared.IdempotencyKeyRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.q)
	}
	return t.slotRepo
}

func (t *pgTx) Lines() shared.LineRepository {
	if t.lineRepo == nil {
		t.lineRepo = repository.NewLineRepository(t.q)
	}
	return t.lineRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.q)
	}
	return t.paymentRepo
}

func (t *pgTx) IdempotencyKeys() shared.IdempotencyKeyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	references   *readstore.ReferenceReadStore
	slots        *readstore.SlotReadStore
	reservations *readstore.ReservationReadStore
	idempotency  *readstore.IdempotencyReadStore
}

func newCommandReads(q *sqlc.Queries, db sqlc.DBTX) *commandReads {
	return &commandReads{
		references:   readstore.NewReferenceReadStore(q, db),
		slots:        readstore.NewSlotReadStore(q, db),
		reservations: readstore.NewReservationReadStore(q, db),
		idempotency:  readstore.NewIdempotencyReadStore(q, db),
	}
}

func (r *commandReads) PaymentMethodByID(ctx context.Context, id int64) (*shared.PaymentMethodSnapshot, error) {
	return r.references.PaymentMethodByID(ctx, id)
}

func (r *commandReads) CourtByID(ctx context.Context, id int64) (*shared.CourtSnapshot, error) {
	return r.references.CourtByID(ctx, id)
}

func (r *commandReads) CourtTypeByID(ctx context.Context, id int64) (*shared.CourtTypeSnapshot, error) {
	return r.references.CourtTypeByID(ctx, id)
}

func (r *commandReads) SlotByKey(ctx context.Context, key slot.Key) (*shared.SlotSnapshot, error) {
	return r.slots.FindByKey(ctx, key)
}

func (r *commandReads) ReservationByIDForUpdate(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	return r.reservations.FindForUpdate(ctx, id)
}

func (r *commandReads) SlotsByReservation(ctx context.Context, reservationID int64) ([]shared.SlotSnapshot, error) {
	return r.slots.FindByReservation(ctx, reservationID)
}

func (r *commandReads) AvailableSlotsBefore(ctx context.Context, date time.Time) ([]shared.SlotSnapshot, error) {
	return r.slots.FindAvailableBefore(ctx, date)
}

func (r *commandReads) OpenReservationsEndedBefore(ctx context.Context, date time.Time) ([]int64, error) {
	return r.reservations.FindOpenEndedBefore(ctx, date)
}

func (r *commandReads) IdempotencyKey(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	return r.idempotency.Get(ctx, key)
}
