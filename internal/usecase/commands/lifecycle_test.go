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

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const reservationID int64 = 42

func (f *commandFixture) lifecycle() commands.ReservationCommands {
	return commands.NewReservationUseCase(f.uow, f.publisher, f.clock)
}

func (f *commandFixture) expectLockedReservation(status string) {
	f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), reservationID).Return(&shared.ReservationSnapshot{
		ID:         reservationID,
		ClientID:   clientID,
		Total:      decimal.RequireFromString("500.00"),
		ReservedOn: today,
		Status:     status,
	}, nil)
}

func applyEvent(c commands.ReservationCommands, event reservation.Event) (*commands.LifecycleResult, error) {
	ctx := context.Background()
	switch event {
	case reservation.EventConfirmPayment:
		return c.ConfirmPayment(ctx, reservationID)
	case reservation.EventCancel:
		return c.Cancel(ctx, reservationID)
	default:
		return c.Finalize(ctx, reservationID)
	}
}

func bookedSlots() []shared.SlotSnapshot {
	return []shared.SlotSnapshot{
		{ID: 501, CourtID: courtA, ScheduleID: 3, Date: tomorrow, Status: "unavailable"},
		{ID: 502, CourtID: courtA, ScheduleID: 4, Date: tomorrow, Status: "unavailable"},
	}
}

func TestLifecycle_AppliedTransitions(t *testing.T) {
	testCases := []struct {
		name         string
		from         string
		event        reservation.Event
		expectStatus reservation.Status
		expectRefund bool
		expectEvents []string
		releases     bool
	}{
		{
			name:         "success: pending reservation is paid",
			from:         "pending",
			event:        reservation.EventConfirmPayment,
			expectStatus: reservation.StatusPaid,
			expectEvents: []string{shared.EventReservationStatusChanged},
		},
		{
			name:         "success: paid reservation is finalized",
			from:         "paid",
			event:        reservation.EventFinalize,
			expectStatus: reservation.StatusFinalized,
			expectEvents: []string{shared.EventReservationStatusChanged},
		},
		{
			name:         "success: unpaid reservation expires into cancelled",
			from:         "pending",
			event:        reservation.EventFinalize,
			expectStatus: reservation.StatusCancelled,
			expectEvents: []string{shared.EventReservationStatusChanged},
			releases:     true,
		},
		{
			name:         "success: pending reservation is cancelled and slots released",
			from:         "pending",
			event:        reservation.EventCancel,
			expectStatus: reservation.StatusCancelled,
			expectEvents: []string{shared.EventReservationStatusChanged},
			releases:     true,
		},
		{
			name:         "success: paid reservation is cancelled with a refund request",
			from:         "paid",
			event:        reservation.EventCancel,
			expectStatus: reservation.StatusCancelled,
			expectRefund: true,
			expectEvents: []string{shared.EventReservationStatusChanged, shared.EventReservationRefundRequested},
			releases:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCommandFixture(t)
			f.expectWithin(1)
			f.expectLockedReservation(tc.from)
			f.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), reservationID, tc.expectStatus).Return(nil)
			if tc.releases {
				f.reads.EXPECT().SlotsByReservation(gomock.Any(), reservationID).Return(bookedSlots(), nil)
				f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(501), slot.StatusAvailable).Return(nil)
				f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(502), slot.StatusAvailable).Return(nil)
			}

			result, err := applyEvent(f.lifecycle(), tc.event)

			require.NoError(t, err)
			assert.Equal(t, tc.expectStatus, result.Reservation.Status())
			assert.Equal(t, reservation.OutcomeApplied, result.Outcome.Kind)
			assert.Equal(t, tc.expectRefund, result.Outcome.RefundRequired)
			if tc.releases {
				assert.Equal(t, []int64{501, 502}, result.ReleasedSlots)
			} else {
				assert.Empty(t, result.ReleasedSlots)
			}

			var types []string
			for _, e := range f.publisher.Events() {
				types = append(types, e.Type)
				assert.Equal(t, tc.from, e.From)
				assert.Equal(t, tc.expectStatus.String(), e.Status)
			}
			if diff := cmp.Diff(tc.expectEvents, types); diff != "" {
				t.Errorf("published events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLifecycle_OutcomesThatChangeNothing(t *testing.T) {
	testCases := []struct {
		name       string
		from       string
		event      reservation.Event
		expectKind reservation.OutcomeKind
	}{
		{
			name:       "ignored: paying twice",
			from:       "paid",
			event:      reservation.EventConfirmPayment,
			expectKind: reservation.OutcomeIgnored,
		},
		{
			name:       "ignored: finalizing a cancelled reservation",
			from:       "cancelled",
			event:      reservation.EventFinalize,
			expectKind: reservation.OutcomeIgnored,
		},
		{
			name:       "rejected: paying a cancelled reservation",
			from:       "cancelled",
			event:      reservation.EventConfirmPayment,
			expectKind: reservation.OutcomeRejected,
		},
		{
			name:       "rejected: cancelling twice",
			from:       "cancelled",
			event:      reservation.EventCancel,
			expectKind: reservation.OutcomeRejected,
		},
		{
			name:       "rejected: cancelling a finalized reservation",
			from:       "finalized",
			event:      reservation.EventCancel,
			expectKind: reservation.OutcomeRejected,
		},
		{
			name:       "rejected: finalizing twice",
			from:       "finalized",
			event:      reservation.EventFinalize,
			expectKind: reservation.OutcomeRejected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCommandFixture(t)
			f.expectWithin(1)
			f.expectLockedReservation(tc.from)
			// no UpdateStatus or slot release is expected

			result, err := applyEvent(f.lifecycle(), tc.event)

			require.NoError(t, err, "state machine outcomes are not errors")
			assert.Equal(t, tc.expectKind, result.Outcome.Kind)
			assert.False(t, result.Outcome.Changed())
			assert.Equal(t, tc.from, result.Reservation.Status().String())
			assert.NotEmpty(t, result.Outcome.Message)
			assert.Empty(t, f.publisher.Events())
		})
	}
}

func TestLifecycle_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		id        int64
		setupMock func(f *commandFixture)
		expectErr []error
	}{
		{
			name:      "error: invalid reservation id",
			id:        0,
			setupMock: func(f *commandFixture) {},
			expectErr: []error{commands.ErrValidation},
		},
		{
			name: "error: reservation not found",
			id:   reservationID,
			setupMock: func(f *commandFixture) {
				f.expectWithin(1)
				f.reads.EXPECT().ReservationByIDForUpdate(gomock.Any(), reservationID).Return(nil, notFoundErr())
			},
			expectErr: []error{commands.ErrNotFound, commands.ErrReservationNotFound},
		},
		{
			name: "error: status update fails",
			id:   reservationID,
			setupMock: func(f *commandFixture) {
				f.expectWithin(1)
				f.expectLockedReservation("pending")
				f.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), reservationID, reservation.StatusCancelled).Return(dbFailureErr())
			},
			expectErr: []error{commands.ErrDatabaseOperationFailed},
		},
		{
			name: "error: slot release fails",
			id:   reservationID,
			setupMock: func(f *commandFixture) {
				f.expectWithin(1)
				f.expectLockedReservation("pending")
				f.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), reservationID, reservation.StatusCancelled).Return(nil)
				f.reads.EXPECT().SlotsByReservation(gomock.Any(), reservationID).Return(bookedSlots(), nil)
				f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(501), slot.StatusAvailable).Return(dbFailureErr())
			},
			expectErr: []error{commands.ErrDatabaseOperationFailed},
		},
		{
			name: "error: stored status is unknown",
			id:   reservationID,
			setupMock: func(f *commandFixture) {
				f.expectWithin(1)
				f.expectLockedReservation("archived")
			},
			expectErr: []error{commands.ErrDatabaseOperationFailed},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCommandFixture(t)
			tc.setupMock(f)

			result, err := f.lifecycle().Cancel(context.Background(), tc.id)

			require.Error(t, err)
			assert.Nil(t, result)
			for _, target := range tc.expectErr {
				assert.True(t, errs.Is(err, target), "expected [%v] in %v", target, err)
			}
			assert.Empty(t, f.publisher.Events())
		})
	}
}

func TestLifecycle_AlreadyAvailableSlotIsSkipped(t *testing.T) {
	f := newCommandFixture(t)
	f.expectWithin(1)
	f.expectLockedReservation("pending")
	f.reservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), reservationID, reservation.StatusCancelled).Return(nil)
	f.reads.EXPECT().SlotsByReservation(gomock.Any(), reservationID).Return([]shared.SlotSnapshot{
		{ID: 501, CourtID: courtA, ScheduleID: 3, Date: tomorrow, Status: "available"},
		{ID: 502, CourtID: courtA, ScheduleID: 4, Date: tomorrow, Status: "unavailable"},
	}, nil)
	f.slots.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), int64(502), slot.StatusAvailable).Return(nil)

	result, err := f.lifecycle().Cancel(context.Background(), reservationID)

	require.NoError(t, err)
	assert.Equal(t, []int64{502}, result.ReleasedSlots)
}
