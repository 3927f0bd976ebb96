package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const claimIdempotencyKey = `-- name: ClaimIdempotencyKey :execrows
INSERT INTO idempotency_key (key, request_hash, status, expires_at)
VALUES ($1, $2, 'processing', $3)
ON CONFLICT (key) DO UPDATE
SET request_hash   = EXCLUDED.request_hash,
    status         = 'processing',
    reservation_id = NULL,
    expires_at     = EXCLUDED.expires_at,
    created_at     = now()
WHERE idempotency_key.expires_at <= $4
`

type ClaimIdempotencyKeyParams struct {
	Key         uuid.UUID          `json:"key"`
	RequestHash string             `json:"request_hash"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
	Now         pgtype.Timestamptz `json:"now"`
}

// ClaimIdempotencyKey affects no row when a live key already exists.
func (q *Queries) ClaimIdempotencyKey(ctx context.Context, db DBTX, arg ClaimIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, claimIdempotencyKey,
		arg.Key,
		arg.RequestHash,
		arg.ExpiresAt,
		arg.Now,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getIdempotencyKey = `-- name: GetIdempotencyKey :one
SELECT key, request_hash, status, reservation_id, expires_at, created_at
FROM idempotency_key
WHERE key = $1
`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID) (IdempotencyKey, error) {
	row := db.QueryRow(ctx, getIdempotencyKey, key)
	var i IdempotencyKey
	err := row.Scan(
		&i.Key,
		&i.RequestHash,
		&i.Status,
		&i.ReservationID,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const completeIdempotencyKey = `-- name: CompleteIdempotencyKey :execrows
UPDATE idempotency_key
SET status = 'completed', reservation_id = $2
WHERE key = $1 AND status = 'processing'
`

type CompleteIdempotencyKeyParams struct {
	Key           uuid.UUID `json:"key"`
	ReservationID int64     `json:"reservation_id"`
}

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, arg CompleteIdempotencyKeyParams) (int64, error) {
	result, err := db.Exec(ctx, completeIdempotencyKey, arg.Key, arg.ReservationID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const releaseIdempotencyKey = `-- name: ReleaseIdempotencyKey :exec
DELETE FROM idempotency_key
WHERE key = $1 AND status = 'processing'
`

func (q *Queries) ReleaseIdempotencyKey(ctx context.Context, db DBTX, key uuid.UUID) error {
	_, err := db.Exec(ctx, releaseIdempotencyKey, key)
	return err
}

const deleteExpiredIdempotencyKeys = `-- name: DeleteExpiredIdempotencyKeys :execrows
DELETE FROM idempotency_key
WHERE expires_at <= $1
`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
