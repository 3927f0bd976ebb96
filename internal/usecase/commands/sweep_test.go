//go:build unit

package commands_test

import (
	"context"
	"testing"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/commands"
	"donbalon/internal/usecase/shared"
	commandsmock "donbalon/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *commandFixture) sweep(reservations commands.ReservationCommands) commands.SweepCommands {
	return commands.NewSweepUseCase(f.uow, reservations, f.clock, nil)
}

func finalizedResult(id int64, kind reservation.OutcomeKind, from, to reservation.Status) *commands.LifecycleResult {
	return &commands.LifecycleResult{
		Reservation: reservation.ReconstructReservation(id, clientID, reservation.Zero(), today, to),
		Outcome:     reservation.Outcome{Event: reservation.EventFinalize, From: from, To: to, Kind: kind},
	}
}

func TestSweep_ExpireSlots(t *testing.T) {
	f := newCommandFixture(t)
	f.expectWithin(1)
	yesterday := today.AddDate(0, 0, -1)
	f.reads.EXPECT().AvailableSlotsBefore(gomock.Any(), today).Return([]shared.SlotSnapshot{
		{ID: 1, CourtID: courtA, ScheduleID: 3, Date: yesterday, Status: "available"},
		{ID: 2, CourtID: courtB, ScheduleID: 4, Date: yesterday, Status: "available"},
	}, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(1), slot.StatusUnavailable).Return(nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(2), slot.StatusUnavailable).Return(nil)

	expired, err := f.sweep(nil).ExpireSlots(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
}

func TestSweep_ExpireSlots_FailureRollsBackEverything(t *testing.T) {
	f := newCommandFixture(t)
	f.expectWithin(1)
	f.reads.EXPECT().AvailableSlotsBefore(gomock.Any(), today).Return([]shared.SlotSnapshot{
		{ID: 1, CourtID: courtA, ScheduleID: 3, Date: today.AddDate(0, 0, -2), Status: "available"},
	}, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(1), slot.StatusUnavailable).Return(dbFailureErr())

	expired, err := f.sweep(nil).ExpireSlots(context.Background())

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	assert.Zero(t, expired)
}

func TestSweep_FinalizeElapsed(t *testing.T) {
	f := newCommandFixture(t)
	reservations := commandsmock.NewMockReservationCommands(f.ctrl)
	f.reads.EXPECT().OpenReservationsEndedBefore(gomock.Any(), today).Return([]int64{1, 2, 3, 4}, nil)

	reservations.EXPECT().Finalize(gomock.Any(), int64(1)).
		Return(finalizedResult(1, reservation.OutcomeApplied, reservation.StatusPaid, reservation.StatusFinalized), nil)
	reservations.EXPECT().Finalize(gomock.Any(), int64(2)).
		Return(finalizedResult(2, reservation.OutcomeApplied, reservation.StatusPending, reservation.StatusCancelled), nil)
	reservations.EXPECT().Finalize(gomock.Any(), int64(3)).
		Return(nil, errs.Mark(errDBConnectionLost, commands.ErrDatabaseOperationFailed))
	// finalized concurrently between the listing and the lock
	reservations.EXPECT().Finalize(gomock.Any(), int64(4)).
		Return(finalizedResult(4, reservation.OutcomeRejected, reservation.StatusFinalized, reservation.StatusFinalized), nil)

	finalized, failed, err := f.sweep(reservations).FinalizeElapsed(context.Background())

	require.NoError(t, err, "one failing reservation does not stop the sweep")
	assert.Equal(t, 2, finalized)
	assert.Equal(t, 1, failed)
}

func TestSweep_Run(t *testing.T) {
	t.Run("success: reports every phase", func(t *testing.T) {
		f := newCommandFixture(t)
		reservations := commandsmock.NewMockReservationCommands(f.ctrl)
		f.expectWithin(2)
		gomock.InOrder(
			f.reads.EXPECT().OpenReservationsEndedBefore(gomock.Any(), today).Return([]int64{9}, nil),
			reservations.EXPECT().Finalize(gomock.Any(), int64(9)).
				Return(finalizedResult(9, reservation.OutcomeApplied, reservation.StatusPaid, reservation.StatusFinalized), nil),
			f.reads.EXPECT().AvailableSlotsBefore(gomock.Any(), today).Return(nil, nil),
			f.keys.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(3), nil),
		)

		report, err := f.sweep(reservations).Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, commands.SweepReport{ExpiredSlots: 0, FinalizedReservations: 1, Failed: 0, PurgedKeys: 3}, report)
	})

	t.Run("error: listing open reservations fails before any slot is touched", func(t *testing.T) {
		f := newCommandFixture(t)
		f.reads.EXPECT().OpenReservationsEndedBefore(gomock.Any(), today).Return(nil, dbFailureErr())

		_, err := f.sweep(nil).Run(context.Background())

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

func TestSweep_PurgeIdempotencyKeys(t *testing.T) {
	t.Run("success: expired keys deleted", func(t *testing.T) {
		f := newCommandFixture(t)
		f.expectWithin(1)
		f.keys.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(5), nil)

		purged, err := f.sweep(nil).PurgeIdempotencyKeys(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 5, purged)
	})

	t.Run("error: delete fails", func(t *testing.T) {
		f := newCommandFixture(t)
		f.expectWithin(1)
		f.keys.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(0), dbFailureErr())

		purged, err := f.sweep(nil).PurgeIdempotencyKeys(context.Background())

		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
		assert.Zero(t, purged)
	})
}
