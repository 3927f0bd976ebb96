//go:build unit || e2e

package builder

import (
	"time"

	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	reqdto "donbalon/internal/handler/dto/request"
	"donbalon/internal/usecase/commands"
	"donbalon/internal/usecase/queries"
)

type BookingItem struct {
	CourtID    int64
	ScheduleID int64
	Date       time.Time
	Price      string
}

type BookingBuilder struct {
	ReservationID   int64
	ClientID        int64
	ClientName      string
	PaymentMethodID int64
	PaymentMethod   string
	Status          reservation.Status
	ReservedOn      time.Time
	Items           []BookingItem
}

func NewBookingBuilder() *BookingBuilder {
	day := time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ReservationID:   101,
		ClientID:        1,
		ClientName:      "Ana Torres",
		PaymentMethodID: 2,
		PaymentMethod:   "Tarjeta",
		Status:          reservation.StatusPaid,
		ReservedOn:      day.AddDate(0, 0, -3),
		Items: []BookingItem{
			{CourtID: 1, ScheduleID: 1, Date: day, Price: "250.00"},
			{CourtID: 1, ScheduleID: 2, Date: day, Price: "250.00"},
		},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Total() string {
	amounts := make([]reservation.Money, len(b.Items))
	for i, it := range b.Items {
		amounts[i] = mustMoney(it.Price)
	}
	return reservation.Sum(amounts...).String()
}

// Build methods
func (b *BookingBuilder) BuildRequestDTO() reqdto.CreateReservationRequest {
	items := make([]reqdto.ReservationItemRequest, len(b.Items))
	for i, it := range b.Items {
		items[i] = reqdto.ReservationItemRequest{
			CourtID:    it.CourtID,
			ScheduleID: it.ScheduleID,
			Date:       it.Date.Format(reqdto.DateLayout),
		}
	}
	return reqdto.CreateReservationRequest{
		ClientID:        b.ClientID,
		PaymentMethodID: b.PaymentMethodID,
		Items:           items,
	}
}

func (b *BookingBuilder) BuildCommand() commands.RegisterBookingRequest {
	items := make([]commands.BookingItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = commands.BookingItem{CourtID: it.CourtID, ScheduleID: it.ScheduleID, Date: it.Date}
	}
	return commands.RegisterBookingRequest{
		ClientID:        b.ClientID,
		PaymentMethodID: b.PaymentMethodID,
		Items:           items,
	}
}

// BuildResult assigns slot ids 1..n and line ids 1..n in item order.
func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	res := reservation.ReconstructReservation(b.ReservationID, b.ClientID, mustMoney(b.Total()), b.ReservedOn, b.Status)
	lines := make([]commands.BookedLine, len(b.Items))
	for i, it := range b.Items {
		id := int64(i + 1)
		key := slot.Key{CourtID: it.CourtID, ScheduleID: it.ScheduleID, Date: it.Date}
		lines[i] = commands.BookedLine{
			Slot: slot.Reconstruct(id, key, slot.StatusUnavailable),
			Line: reservation.ReconstructLine(id, b.ReservationID, id, mustMoney(it.Price)),
		}
	}
	return &commands.BookingResult{
		Reservation:   res,
		Lines:         lines,
		Payment:       reservation.ReconstructPayment(1, b.ReservationID, b.PaymentMethodID, b.ReservedOn, res.Total()),
		PaymentMethod: b.PaymentMethod,
	}
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	lines := make([]queries.ReservationLineView, len(b.Items))
	for i, it := range b.Items {
		id := int64(i + 1)
		lines[i] = queries.ReservationLineView{
			ID:         id,
			SlotID:     id,
			CourtID:    it.CourtID,
			CourtName:  "Cancha 1",
			ScheduleID: it.ScheduleID,
			StartsAt:   "18:00",
			EndsAt:     "19:00",
			Date:       it.Date,
			SlotStatus: slot.StatusUnavailable.String(),
			Price:      it.Price,
		}
	}
	return &queries.ReservationView{
		ID:         b.ReservationID,
		ClientID:   b.ClientID,
		ClientName: b.ClientName,
		Total:      b.Total(),
		ReservedOn: b.ReservedOn,
		Status:     b.Status.String(),
		Lines:      lines,
		Payment: &queries.PaymentView{
			ID:              1,
			PaymentMethodID: b.PaymentMethodID,
			PaymentMethod:   b.PaymentMethod,
			PaidOn:          b.ReservedOn,
			Amount:          b.Total(),
		},
	}
}

func (b *BookingBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:         b.ReservationID,
		Total:      b.Total(),
		ReservedOn: b.ReservedOn,
		Status:     b.Status.String(),
		LineCount:  int32(len(b.Items)),
	}
}

// BuildLifecycleResult applies event to a reservation in the builder's status.
func (b *BookingBuilder) BuildLifecycleResult(event reservation.Event) *commands.LifecycleResult {
	res := reservation.ReconstructReservation(b.ReservationID, b.ClientID, mustMoney(b.Total()), b.ReservedOn, b.Status)
	out := res.Apply(event)
	result := &commands.LifecycleResult{Reservation: res, Outcome: out}
	if out.Changed() && out.To == reservation.StatusCancelled {
		for i := range b.Items {
			result.ReleasedSlots = append(result.ReleasedSlots, int64(i+1))
		}
	}
	return result
}

func mustMoney(s string) reservation.Money {
	m, err := reservation.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}
