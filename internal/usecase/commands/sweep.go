package commands

import (
	"context"
	"log/slog"
	"time"

	"donbalon/internal/pkg/clock"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"
)

type SweepReport struct {
	ExpiredSlots          int
	FinalizedReservations int
	Failed                int
	PurgedKeys            int
}

type SweepCommands interface {
	// ExpireSlots marks every past-dated available slot unavailable.
	ExpireSlots(ctx context.Context) (int, error)
	// FinalizeElapsed finalizes open reservations whose last slot date has passed.
	FinalizeElapsed(ctx context.Context) (finalized, failed int, err error)
	// PurgeIdempotencyKeys deletes idempotency records past their expiry.
	PurgeIdempotencyKeys(ctx context.Context) (int, error)
	Run(ctx context.Context) (SweepReport, error)
}

type sweepUseCaseImpl struct {
	uow          shared.UnitOfWork
	reservations ReservationCommands
	clock        clock.Clock
	location     *time.Location
}

func NewSweepUseCase(uow shared.UnitOfWork, reservations ReservationCommands, clk clock.Clock, loc *time.Location) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, reservations: reservations, clock: clk, location: loc}
}

func (uc *sweepUseCaseImpl) Run(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	// Finalizing cancels unpaid bookings and releases their slots, so expiry runs after it.
	finalized, failed, err := uc.FinalizeElapsed(ctx)
	report.FinalizedReservations = finalized
	report.Failed = failed
	if err != nil {
		return report, err
	}

	expired, err := uc.ExpireSlots(ctx)
	if err != nil {
		return report, err
	}
	report.ExpiredSlots = expired

	purged, err := uc.PurgeIdempotencyKeys(ctx)
	if err != nil {
		return report, err
	}
	report.PurgedKeys = purged

	slog.Info("sweep completed",
		"expired_slots", report.ExpiredSlots,
		"finalized_reservations", report.FinalizedReservations,
		"failed", report.Failed,
		"purged_idempotency_keys", report.PurgedKeys)
	return report, nil
}

func (uc *sweepUseCaseImpl) ExpireSlots(ctx context.Context) (int, error) {
	today := clock.Today(uc.clock, uc.location)

	expired := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = 0
		snaps, err := tx.Reads().AvailableSlotsBefore(ctx, today)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, snap := range snaps {
			s, err := slotFromSnapshot(snap)
			if err != nil {
				return err
			}
			out := s.Reserve()
			if !out.Changed() {
				continue
			}
			if err := tx.Slots().UpdateStatus(ctx, tx.DB(), s.ID(), s.Status()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			expired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

// FinalizeElapsed gives each reservation its own transaction; one failure does not stop the rest.
func (uc *sweepUseCaseImpl) FinalizeElapsed(ctx context.Context) (int, int, error) {
	today := clock.Today(uc.clock, uc.location)

	ids, err := uc.uow.CommandReads().OpenReservationsEndedBefore(ctx, today)
	if err != nil {
		return 0, 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	finalized, failed := 0, 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return finalized, failed, ctx.Err()
		}
		result, err := uc.reservations.Finalize(ctx, id)
		if err != nil {
			failed++
			slog.Error("failed to finalize reservation", "reservation_id", id, "error", err.Error())
			continue
		}
		if result.Outcome.Changed() {
			finalized++
		}
	}
	return finalized, failed, nil
}

func (uc *sweepUseCaseImpl) PurgeIdempotencyKeys(ctx context.Context) (int, error) {
	now := uc.clock.Now()

	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.IdempotencyKeys().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(purged), nil
}
