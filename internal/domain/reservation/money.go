package reservation

import (
	"donbalon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errs.New("amount cannot be negative")

// Money is a fixed-point amount; arithmetic never goes through floating point.
type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.Wrap(err, "parse money")
	}
	return NewMoney(d)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders two decimal places, as amounts are stored.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
