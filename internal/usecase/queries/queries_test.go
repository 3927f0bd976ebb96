//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/usecase/queries"
	queriesmock "donbalon/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestCursor_RoundTrip(t *testing.T) {
	encoded := queries.EncodeAfterCursor(day(14), 321)

	reservedOn, id, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, day(14), reservedOn)
	assert.Equal(t, int64(321), id)
}

func TestCursor_DecodeRejectsGarbage(t *testing.T) {
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "error: empty", cursor: ""},
		{name: "error: not base64", cursor: "%%%"},
		{name: "error: unknown version", cursor: "djI6MTAtMQ=="},     // v2:10-1
		{name: "error: missing id", cursor: "djE6MjAwMDA="},          // v1:20000
		{name: "error: non-positive id", cursor: "djE6MjAwMDAtMA=="}, // v1:20000-0
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

// =============================================================================
// ReservationQueries
// =============================================================================

func TestReservationQueries_GetByID(t *testing.T) {
	testCases := []struct {
		name      string
		storeErr  error
		expectErr error
	}{
		{name: "success: reservation found"},
		{name: "error: reservation not found", storeErr: infra.WrapRepoErr("miss", pgx.ErrNoRows), expectErr: queries.ErrReservationNotFound},
		{name: "error: store failure is passed through", storeErr: infra.WrapRepoErr("boom", errors.New("connection reset"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			q := queries.NewReservationQueries(store)

			if tc.storeErr != nil {
				store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, tc.storeErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&queries.ReservationView{ID: 5, Status: "pending"}, nil)
			}

			view, err := q.GetByID(context.Background(), 5)

			switch {
			case tc.storeErr == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(5), view.ID)
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			default:
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			}
		})
	}
}

func TestReservationQueries_ListByClient(t *testing.T) {
	rows := func(n int) []*queries.ReservationListItem {
		out := make([]*queries.ReservationListItem, n)
		for i := range out {
			out[i] = &queries.ReservationListItem{ID: int64(100 - i), ReservedOn: day(20 - i), Status: "paid"}
		}
		return out
	}

	t.Run("success: first page with more results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().FindByClientFirstPage(gomock.Any(), int64(7), int32(3)).Return(rows(3), nil)

		items, next, err := queries.NewReservationQueries(store).ListByClient(context.Background(), 7, nil, 2)

		require.NoError(t, err)
		require.Len(t, items, 2)
		require.NotNil(t, next)
		reservedOn, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, id)
		assert.Equal(t, items[1].ReservedOn, reservedOn)
	})

	t.Run("success: last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(day(18), 98)}
		store.EXPECT().FindByClientKeyset(gomock.Any(), int64(7), day(18), int64(98), int32(3)).Return(rows(1), nil)

		items, next, err := queries.NewReservationQueries(store).ListByClient(context.Background(), 7, cursor, 2)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("error: invalid cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)

		_, _, err := queries.NewReservationQueries(store).ListByClient(context.Background(), 7, &queries.Cursor{After: "nope"}, 2)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

// =============================================================================
// SlotQueries
// =============================================================================

func TestSlotQueries_CourtDay(t *testing.T) {
	t.Run("success: only schedules without a slot are bookable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		slotID, released := int64(9), "available"
		store.EXPECT().FindCourt(gomock.Any(), int64(1)).
			Return(&queries.CourtView{ID: 1, Name: "Cancha 1", CourtType: "Fútbol 5", HourlyRate: "500.00"}, nil)
		store.EXPECT().FindDaySchedules(gomock.Any(), int64(1), day(11)).Return([]queries.ScheduleAvailability{
			{ScheduleID: 1, StartsAt: "18:00", EndsAt: "19:00"},
			{ScheduleID: 2, StartsAt: "19:00", EndsAt: "20:00", SlotID: &slotID, SlotStatus: &released},
		}, nil)

		view, err := queries.NewSlotQueries(store).CourtDay(context.Background(), 1, day(11).Add(15*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, day(11), view.Date)
		require.Len(t, view.Schedules, 2)
		assert.True(t, view.Schedules[0].Bookable)
		assert.False(t, view.Schedules[1].Bookable)
	})

	t.Run("error: court not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockSlotReadStore(ctrl)
		store.EXPECT().FindCourt(gomock.Any(), int64(1)).Return(nil, infra.WrapRepoErr("miss", pgx.ErrNoRows))

		_, err := queries.NewSlotQueries(store).CourtDay(context.Background(), 1, day(11))

		assert.ErrorIs(t, err, queries.ErrCourtNotFound)
	})
}
