package commands

import (
	"context"
	"log/slog"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	"donbalon/internal/infra"
	"donbalon/internal/pkg/clock"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"
)

// LifecycleResult carries the outcome even when the event was ignored or rejected.
type LifecycleResult struct {
	Reservation   *reservation.Reservation
	Outcome       reservation.Outcome
	ReleasedSlots []int64
}

type ReservationCommands interface {
	ConfirmPayment(ctx context.Context, reservationID int64) (*LifecycleResult, error)
	Cancel(ctx context.Context, reservationID int64) (*LifecycleResult, error)
	Finalize(ctx context.Context, reservationID int64) (*LifecycleResult, error)
}

type reservationUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, publisher: publisher, clock: clk}
}

func (uc *reservationUseCaseImpl) ConfirmPayment(ctx context.Context, reservationID int64) (*LifecycleResult, error) {
	return uc.apply(ctx, reservationID, reservation.EventConfirmPayment)
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, reservationID int64) (*LifecycleResult, error) {
	return uc.apply(ctx, reservationID, reservation.EventCancel)
}

func (uc *reservationUseCaseImpl) Finalize(ctx context.Context, reservationID int64) (*LifecycleResult, error) {
	return uc.apply(ctx, reservationID, reservation.EventFinalize)
}

func (uc *reservationUseCaseImpl) apply(ctx context.Context, reservationID int64, event reservation.Event) (*LifecycleResult, error) {
	if reservationID <= 0 {
		return nil, validationError("reservation id is required")
	}

	var result *LifecycleResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByIDForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return notFound(errs.Newf("reservation %d", reservationID), ErrReservationNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		res, err := reservationFromSnapshot(snap)
		if err != nil {
			return err
		}

		outcome := res.Apply(event)
		result = &LifecycleResult{Reservation: res, Outcome: outcome}
		if !outcome.Changed() {
			return nil
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if res.Status() == reservation.StatusCancelled {
			released, err := releaseSlots(ctx, tx, res.ID())
			if err != nil {
				return err
			}
			result.ReleasedSlots = released
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logOutcome(result)
	if result.Outcome.Changed() {
		uc.publishChange(ctx, result)
	}
	return result, nil
}

func releaseSlots(ctx context.Context, tx shared.Tx, reservationID int64) ([]int64, error) {
	snaps, err := tx.Reads().SlotsByReservation(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	released := make([]int64, 0, len(snaps))
	for _, snap := range snaps {
		s, err := slotFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out := s.Release()
		if !out.Changed() {
			slog.Warn(out.Message, "slot_id", s.ID(), "reservation_id", reservationID)
			continue
		}
		if err := tx.Slots().UpdateStatus(ctx, tx.DB(), s.ID(), s.Status()); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		released = append(released, s.ID())
	}
	return released, nil
}

func (uc *reservationUseCaseImpl) publishChange(ctx context.Context, result *LifecycleResult) {
	res, out := result.Reservation, result.Outcome
	event := shared.ReservationEvent{
		Type:          shared.EventReservationStatusChanged,
		ReservationID: res.ID(),
		ClientID:      res.ClientID(),
		From:          out.From.String(),
		Status:        out.To.String(),
		Total:         res.Total().String(),
		Message:       out.Message,
		OccurredAt:    uc.clock.Now(),
	}
	publish(ctx, uc.publisher, event)

	if out.RefundRequired {
		event.Type = shared.EventReservationRefundRequested
		publish(ctx, uc.publisher, event)
	}
}

func logOutcome(result *LifecycleResult) {
	out := result.Outcome
	attrs := []any{
		"reservation_id", result.Reservation.ID(),
		"event", out.Event.String(),
		"from", out.From.String(),
		"to", out.To.String(),
	}
	switch out.Kind {
	case reservation.OutcomeApplied:
		slog.Info(out.Message, attrs...)
	default:
		slog.Warn(out.Message, append(attrs, "outcome", string(out.Kind))...)
	}
}

func reservationFromSnapshot(snap *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	total, err := reservation.NewMoney(snap.Total)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservation.ReconstructReservation(snap.ID, snap.ClientID, total, snap.ReservedOn, status), nil
}

func slotFromSnapshot(snap shared.SlotSnapshot) (*slot.Slot, error) {
	status, err := slot.ParseStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	key, err := slot.NewKey(snap.CourtID, snap.ScheduleID, snap.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return slot.Reconstruct(snap.ID, key, status), nil
}
