//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/pkg/clock"
	"donbalon/internal/usecase/shared"
	"donbalon/tests/common/eventtest"
	sharedmock "donbalon/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow = time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	today    = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)

	errDBConnectionLost = errors.New("database connection lost")
)

type commandFixture struct {
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	slots        *sharedmock.MockSlotRepository
	lines        *sharedmock.MockLineRepository
	payments     *sharedmock.MockPaymentRepository
	keys         *sharedmock.MockIdempotencyKeyRepository
	publisher    *eventtest.RecordingPublisher
	clock        *clock.MockClock
}

func newCommandFixture(t *testing.T) *commandFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &commandFixture{
		ctrl:         ctrl,
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		slots:        sharedmock.NewMockSlotRepository(ctrl),
		lines:        sharedmock.NewMockLineRepository(ctrl),
		payments:     sharedmock.NewMockPaymentRepository(ctrl),
		keys:         sharedmock.NewMockIdempotencyKeyRepository(ctrl),
		publisher:    &eventtest.RecordingPublisher{},
		clock:        clock.NewMockClock(fixedNow),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Slots().Return(f.slots).AnyTimes()
	f.tx.EXPECT().Lines().Return(f.lines).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().IdempotencyKeys().Return(f.keys).AnyTimes()
	return f
}

// expectWithin runs the callback against the mocked Tx, returning its error the way the real UnitOfWork does.
func (f *commandFixture) expectWithin(times int) {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).Times(times)
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("duplicate", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
}

func foreignKeyErr() error {
	return infra.WrapRepoErr("fk", &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"})
}

func dbFailureErr() error {
	return infra.WrapRepoErr("failure", errDBConnectionLost)
}
