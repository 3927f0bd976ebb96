//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	"donbalon/internal/infra"
	"donbalon/internal/infra/repository"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/pgconv"
	repositorymock "donbalon/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnection = errors.New("database connection error")
	bookingDay      = time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
)

func newReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	total, err := reservation.ParseMoney("500.00")
	require.NoError(t, err)
	res, err := reservation.NewReservation(7, total, bookingDay, reservation.StatusPending)
	require.NoError(t, err)
	return res
}

// =============================================================================
// Reservation
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReservationWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error) {
						total, err := pgconv.DecimalFromNumeric(arg.Total)
						require.NoError(t, err)
						assert.Equal(t, "500.00", total.StringFixed(2))
						assert.Equal(t, int64(7), arg.ClientID)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, bookingDay, pgconv.DateFromPgtype(arg.ReservedOn))
						return 42, nil
					})
			},
		},
		{
			name: "error: unknown client",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(int64(0), fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, tx, gomock.Any()).Return(int64(0), errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)
			tc.setupMock(mockQueries, mockDB)

			id, err := repo.Create(ctx, mockDB, newReservation(t))

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), id)
			}
		})
	}
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: status updated", rows: 1},
		{name: "error: no row matched", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)
			mockQueries.EXPECT().
				UpdateReservationStatus(ctx, mockDB, sqlc.UpdateReservationStatusParams{ID: 42, Status: "cancelled"}).
				Return(tc.rows, tc.queryErr)

			err := repo.UpdateStatus(ctx, mockDB, 42, reservation.StatusCancelled)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Slot
// =============================================================================

func TestSlotRepository_Create(t *testing.T) {
	ctx := context.Background()
	key, err := slot.NewKey(3, 5, bookingDay)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: slot created"},
		{
			name:          "error: triple already booked",
			queryErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"uq_slot_court_schedule_date\""},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name:          "error: unknown schedule",
			queryErr:      &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries)

			want := sqlc.CreateSlotParams{
				CourtID:    3,
				ScheduleID: 5,
				SlotDate:   pgconv.DateToPgtype(bookingDay),
				Status:     "unavailable",
			}
			returnID := int64(501)
			if tc.queryErr != nil {
				returnID = 0
			}
			mockQueries.EXPECT().CreateSlot(ctx, mockDB, want).Return(returnID, tc.queryErr)

			id, err := repo.Create(ctx, mockDB, slot.NewBookedSlot(key))

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(501), id)
			}
		})
	}
}

func TestSlotRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSlotRepository(mockQueries)

	mockQueries.EXPECT().UpdateSlotStatus(ctx, mockDB, sqlc.UpdateSlotStatusParams{ID: 1, Status: "available"}).Return(int64(1), nil)
	mockQueries.EXPECT().UpdateSlotStatus(ctx, mockDB, sqlc.UpdateSlotStatusParams{ID: 2, Status: "available"}).Return(int64(0), nil)

	assert.NoError(t, repo.UpdateStatus(ctx, mockDB, 1, slot.StatusAvailable))
	err := repo.UpdateStatus(ctx, mockDB, 2, slot.StatusAvailable)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Line and Payment
// =============================================================================

func TestLineRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockLineWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewLineRepository(mockQueries)

	price, err := reservation.ParseMoney("350.5")
	require.NoError(t, err)
	line, err := reservation.NewLine(42, 501, price)
	require.NoError(t, err)

	mockQueries.EXPECT().CreateReservationLine(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationLineParams) (int64, error) {
			got, err := pgconv.DecimalFromNumeric(arg.Price)
			require.NoError(t, err)
			assert.Equal(t, "350.50", got.StringFixed(2))
			assert.Equal(t, int64(42), arg.ReservationID)
			assert.Equal(t, int64(501), arg.SlotID)
			return 900, nil
		})

	id, err := repo.Create(ctx, mockDB, line)

	require.NoError(t, err)
	assert.Equal(t, int64(900), id)
}

func TestPaymentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: payment recorded"},
		{name: "error: no rows returned", queryErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries)

			payment, err := reservation.NewPayment(newReservation(t).WithID(42), 1, bookingDay)
			require.NoError(t, err)
			mockQueries.EXPECT().CreatePayment(ctx, mockDB, gomock.Any()).Return(int64(77), tc.queryErr)

			id, err := repo.Create(ctx, mockDB, payment)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(77), id)
			}
		})
	}
}

// =============================================================================
// Idempotency
// =============================================================================

func TestIdempotencyRepository_Claim(t *testing.T) {
	ctx := context.Background()
	key := uuid.MustParse("6f1c2b7e-3d4a-4c1e-9a57-0b8d2f6e4c31")
	now := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	want := sqlc.ClaimIdempotencyKeyParams{
		Key:         key,
		RequestHash: "hash",
		ExpiresAt:   pgconv.TimeToPgtype(now.Add(24 * time.Hour)),
		Now:         pgconv.TimeToPgtype(now),
	}

	testCases := []struct {
		name          string
		rows          int64
		queryErr      error
		expectClaimed bool
		expectedError bool
	}{
		{name: "success: new key claimed", rows: 1, expectClaimed: true},
		{name: "success: live key already exists", rows: 0, expectClaimed: false},
		{name: "error: database error occurs", queryErr: errDBConnection, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries)
			mockQueries.EXPECT().ClaimIdempotencyKey(ctx, mockDB, want).Return(tc.rows, tc.queryErr)

			claimed, err := repo.Claim(ctx, mockDB, key, "hash", now.Add(24*time.Hour), now)

			if tc.expectedError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectClaimed, claimed)
		})
	}
}

func TestIdempotencyRepository_Complete(t *testing.T) {
	ctx := context.Background()
	key := uuid.MustParse("6f1c2b7e-3d4a-4c1e-9a57-0b8d2f6e4c31")
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries)

	params := sqlc.CompleteIdempotencyKeyParams{Key: key, ReservationID: 42}
	mockQueries.EXPECT().CompleteIdempotencyKey(ctx, mockDB, params).Return(int64(1), nil)
	mockQueries.EXPECT().CompleteIdempotencyKey(ctx, mockDB, params).Return(int64(0), nil)

	assert.NoError(t, repo.Complete(ctx, mockDB, key, 42))
	err := repo.Complete(ctx, mockDB, key, 42)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "key no longer processing")
}

// =============================================================================
// Mock helpers
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
