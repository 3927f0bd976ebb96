package repository

import (
	"context"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	ReleaseIdempotencyKey(ctx context.Context, db sqlc.DBTX, key uuid.UUID) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

// Claim takes over an expired record for the same key.
func (r *IdempotencyRepository) Claim(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error) {
	n, err := r.queries.ClaimIdempotencyKey(ctx, tx, sqlc.ClaimIdempotencyKeyParams{
		Key:         key,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return n > 0, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, reservationID int64) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, tx, sqlc.CompleteIdempotencyKeyParams{
		Key:           key,
		ReservationID: reservationID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not in processing state", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID) error {
	if err := r.queries.ReleaseIdempotencyKey(ctx, tx, key); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
