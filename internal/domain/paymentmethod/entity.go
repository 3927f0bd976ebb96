package paymentmethod

import (
	"strings"

	"donbalon/internal/domain/reservation"
)

// descriptions that mean the money is collected at the venue
var cashMarkers = []string{"cash", "efectivo"}

type PaymentMethod struct {
	id          int64
	description string
}

func New(id int64, description string) PaymentMethod {
	return PaymentMethod{id: id, description: strings.TrimSpace(description)}
}

func (m PaymentMethod) ID() int64           { return m.id }
func (m PaymentMethod) Description() string { return m.description }

func (m PaymentMethod) IsCash() bool {
	d := strings.ToLower(m.description)
	for _, marker := range cashMarkers {
		if strings.Contains(d, marker) {
			return true
		}
	}
	return false
}

// InitialReservationStatus: cash bookings wait for payment at the venue, everything else is paid up front.
func (m PaymentMethod) InitialReservationStatus() reservation.Status {
	if m.IsCash() {
		return reservation.StatusPending
	}
	return reservation.StatusPaid
}
