package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyKeyTTL = 24 * time.Hour

var (
	ErrIdempotencyKeyReused  = errs.New("idempotency key was used for a different request")
	ErrIdempotencyInProgress = errs.New("request with this idempotency key is still in progress")
)

type fingerprintItem struct {
	CourtID    int64  `json:"court_id"`
	ScheduleID int64  `json:"schedule_id"`
	Date       string `json:"date"`
}

// requestFingerprint hashes the booking payload; the key itself is excluded.
func requestFingerprint(req RegisterBookingRequest) string {
	items := make([]fingerprintItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = fingerprintItem{
			CourtID:    item.CourtID,
			ScheduleID: item.ScheduleID,
			Date:       item.Date.Format(time.DateOnly),
		}
	}
	data, _ := json.Marshal(struct {
		ClientID        int64             `json:"client_id"`
		PaymentMethodID int64             `json:"payment_method_id"`
		Items           []fingerprintItem `json:"items"`
	}{req.ClientID, req.PaymentMethodID, items})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// claimKey returns the reservation id recorded for key when the same request already completed.
func (uc *bookingUseCaseImpl) claimKey(ctx context.Context, key uuid.UUID, hash string) (int64, error) {
	now := uc.clock.Now()

	var replayID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.IdempotencyKeys().Claim(ctx, tx.DB(), key, hash, now.Add(idempotencyKeyTTL), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if claimed {
			return nil
		}

		rec, err := tx.Reads().IdempotencyKey(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// released by a failing request between our claim and this read
				return ErrIdempotencyInProgress
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rec.RequestHash != hash {
			return ErrIdempotencyKeyReused
		}
		if rec.Status == shared.IdempotencyCompleted && rec.ReservationID != nil {
			replayID = *rec.ReservationID
			return nil
		}
		return ErrIdempotencyInProgress
	})
	if err != nil {
		return 0, err
	}
	return replayID, nil
}

// releaseKey lets the client retry with the same key after a failed booking.
func (uc *bookingUseCaseImpl) releaseKey(ctx context.Context, key uuid.UUID) {
	err := uc.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.IdempotencyKeys().Release(ctx, tx.DB(), key)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key",
			"idempotency_key", key.String(),
			"error", err.Error())
	}
}
