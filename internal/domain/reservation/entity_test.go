//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"donbalon/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservedOn = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) reservation.Money {
	t.Helper()
	m, err := reservation.ParseMoney(s)
	require.NoError(t, err)
	return m
}

func TestNewReservation(t *testing.T) {
	total := mustMoney(t, "2500.00")

	tests := []struct {
		name     string
		clientID int64
		on       time.Time
		initial  reservation.Status
		errIs    error
	}{
		{name: "pendingで作成OK", clientID: 1, on: reservedOn, initial: reservation.StatusPending},
		{name: "paidで作成OK", clientID: 1, on: reservedOn, initial: reservation.StatusPaid},
		{name: "cancelledで作成NG", clientID: 1, on: reservedOn, initial: reservation.StatusCancelled, errIs: reservation.ErrInitialStatus},
		{name: "finalizedで作成NG", clientID: 1, on: reservedOn, initial: reservation.StatusFinalized, errIs: reservation.ErrInitialStatus},
		{name: "クライアントID無しNG", clientID: 0, on: reservedOn, initial: reservation.StatusPaid, errIs: reservation.ErrInvalidClient},
		{name: "日付無しNG", clientID: 1, initial: reservation.StatusPaid, errIs: reservation.ErrMissingReservedOn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := reservation.NewReservation(tt.clientID, total, tt.on, tt.initial)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(0), res.ID())
			assert.Equal(t, tt.initial, res.Status())
			assert.True(t, res.Total().Equal(total))
			assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), res.ReservedOn())
		})
	}
}

func TestReservation_Lifecycle(t *testing.T) {
	t.Run("pending→paid→finalized", func(t *testing.T) {
		res, err := reservation.NewReservation(7, mustMoney(t, "100"), reservedOn, reservation.StatusPending)
		require.NoError(t, err)

		out := res.ConfirmPayment()
		assert.True(t, out.Changed())
		assert.Equal(t, reservation.StatusPaid, res.Status())

		out = res.ConfirmPayment()
		assert.Equal(t, reservation.OutcomeIgnored, out.Kind)
		assert.Equal(t, reservation.StatusPaid, res.Status())

		out = res.Finalize()
		assert.True(t, out.Changed())
		assert.Equal(t, reservation.StatusFinalized, res.Status())

		out = res.Cancel()
		assert.Equal(t, reservation.OutcomeRejected, out.Kind)
		assert.Equal(t, reservation.StatusFinalized, res.Status())
	})

	t.Run("paidのキャンセルは返金が必要", func(t *testing.T) {
		res := reservation.ReconstructReservation(3, 7, mustMoney(t, "100"), reservedOn, reservation.StatusPaid)

		out := res.Cancel()

		want := reservation.Outcome{
			Event:          reservation.EventCancel,
			From:           reservation.StatusPaid,
			To:             reservation.StatusCancelled,
			Kind:           reservation.OutcomeApplied,
			Message:        out.Message,
			RefundRequired: true,
		}
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("Outcome mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("WithIDは元を変更しない", func(t *testing.T) {
		res, err := reservation.NewReservation(7, mustMoney(t, "100"), reservedOn, reservation.StatusPaid)
		require.NoError(t, err)

		saved := res.WithID(42)

		assert.Equal(t, int64(42), saved.ID())
		assert.Equal(t, int64(0), res.ID())
	})
}

func TestLinesAndPayment(t *testing.T) {
	a := mustMoney(t, "1500.50")
	b := mustMoney(t, "999.50")
	total := reservation.Sum(a, b)
	assert.Equal(t, "2500.00", total.String())

	res := reservation.ReconstructReservation(10, 1, total, reservedOn, reservation.StatusPaid)

	l1, err := reservation.NewLine(res.ID(), 100, a)
	require.NoError(t, err)
	l2, err := reservation.NewLine(res.ID(), 101, b)
	require.NoError(t, err)

	t.Run("合計一致OK", func(t *testing.T) {
		assert.NoError(t, reservation.VerifyTotal(total, []reservation.Line{l1, l2}))
	})

	t.Run("合計不一致NG", func(t *testing.T) {
		err := reservation.VerifyTotal(total, []reservation.Line{l1})
		assert.ErrorIs(t, err, reservation.ErrTotalMismatch)
	})

	t.Run("明細無しは合計ゼロ", func(t *testing.T) {
		assert.NoError(t, reservation.VerifyTotal(reservation.Zero(), nil))
	})

	t.Run("明細の参照無しNG", func(t *testing.T) {
		_, err := reservation.NewLine(0, 100, a)
		assert.ErrorIs(t, err, reservation.ErrLineReferences)
	})

	t.Run("支払額は予約合計と一致", func(t *testing.T) {
		p, err := reservation.NewPayment(res, 2, reservedOn)
		require.NoError(t, err)
		assert.True(t, p.Amount().Equal(res.Total()))
		assert.Equal(t, res.ID(), p.ReservationID())
		assert.Equal(t, int64(2), p.PaymentMethodID())
	})

	t.Run("支払日時は時刻まで保持", func(t *testing.T) {
		paidAt := time.Date(2025, 11, 21, 1, 0, 0, 0, time.UTC)
		p, err := reservation.NewPayment(res, 2, paidAt)
		require.NoError(t, err)
		assert.True(t, p.PaidOn().Equal(paidAt))

		again := reservation.ReconstructPayment(7, res.ID(), 2, paidAt, res.Total())
		assert.True(t, again.PaidOn().Equal(paidAt))
	})

	t.Run("未保存の予約への支払NG", func(t *testing.T) {
		unsaved, err := reservation.NewReservation(1, total, reservedOn, reservation.StatusPaid)
		require.NoError(t, err)
		_, err = reservation.NewPayment(unsaved, 2, reservedOn)
		assert.ErrorIs(t, err, reservation.ErrPaymentReferences)
	})
}

func TestMoney(t *testing.T) {
	t.Run("負の金額NG", func(t *testing.T) {
		_, err := reservation.ParseMoney("-1")
		assert.ErrorIs(t, err, reservation.ErrNegativeAmount)
	})

	t.Run("数値以外NG", func(t *testing.T) {
		_, err := reservation.ParseMoney("abc")
		assert.Error(t, err)
	})

	t.Run("スケール違いでも等価", func(t *testing.T) {
		assert.True(t, mustMoney(t, "10").Equal(mustMoney(t, "10.00")))
	})

	t.Run("多数明細の合算で誤差無し", func(t *testing.T) {
		sum := reservation.Zero()
		for range 10 {
			sum = sum.Add(mustMoney(t, "0.10"))
		}
		assert.True(t, sum.Equal(mustMoney(t, "1.00")))
		assert.Equal(t, "1.00", sum.String())

		lines := reservation.Zero()
		for range 1000 {
			lines = lines.Add(mustMoney(t, "175.55"))
		}
		assert.Equal(t, "175550.00", lines.String())
	})
}
