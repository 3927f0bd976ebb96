package reservation

import (
	"time"

	"donbalon/internal/pkg/errs"
)

var ErrPaymentReferences = errs.New("payment must reference a reservation and a payment method")

type Payment struct {
	id              int64
	reservationID   int64
	paymentMethodID int64
	paidOn          time.Time
	amount          Money
}

// NewPayment covers the whole reservation; split payments are not modeled.
// paidOn is kept as the full instant of payment.
func NewPayment(res *Reservation, paymentMethodID int64, paidOn time.Time) (Payment, error) {
	if res == nil || res.ID() <= 0 || paymentMethodID <= 0 {
		return Payment{}, ErrPaymentReferences
	}
	return Payment{
		reservationID:   res.ID(),
		paymentMethodID: paymentMethodID,
		paidOn:          paidOn,
		amount:          res.Total(),
	}, nil
}

func ReconstructPayment(id, reservationID, paymentMethodID int64, paidOn time.Time, amount Money) Payment {
	return Payment{
		id:              id,
		reservationID:   reservationID,
		paymentMethodID: paymentMethodID,
		paidOn:          paidOn,
		amount:          amount,
	}
}

func (p Payment) WithID(id int64) Payment {
	p.id = id
	return p
}

func (p Payment) ID() int64              { return p.id }
func (p Payment) ReservationID() int64   { return p.reservationID }
func (p Payment) PaymentMethodID() int64 { return p.paymentMethodID }
func (p Payment) PaidOn() time.Time      { return p.paidOn }
func (p Payment) Amount() Money          { return p.amount }
