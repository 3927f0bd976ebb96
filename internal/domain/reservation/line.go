package reservation

import "donbalon/internal/pkg/errs"

var ErrLineReferences = errs.New("line must reference a reservation and a slot")

// Line is the price charged for one slot of a reservation.
type Line struct {
	id            int64
	reservationID int64
	slotID        int64
	price         Money
}

func NewLine(reservationID, slotID int64, price Money) (Line, error) {
	if reservationID <= 0 || slotID <= 0 {
		return Line{}, ErrLineReferences
	}
	return Line{reservationID: reservationID, slotID: slotID, price: price}, nil
}

func ReconstructLine(id, reservationID, slotID int64, price Money) Line {
	return Line{id: id, reservationID: reservationID, slotID: slotID, price: price}
}

func (l Line) WithID(id int64) Line {
	l.id = id
	return l
}

func (l Line) ID() int64            { return l.id }
func (l Line) ReservationID() int64 { return l.reservationID }
func (l Line) SlotID() int64        { return l.slotID }
func (l Line) Price() Money         { return l.price }

// VerifyTotal checks the creation invariant between a reservation and its lines.
func VerifyTotal(total Money, lines []Line) error {
	prices := make([]Money, len(lines))
	for i, l := range lines {
		prices[i] = l.price
	}
	if !Sum(prices...).Equal(total) {
		return ErrTotalMismatch
	}
	return nil
}
