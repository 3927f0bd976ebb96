//go:build unit

package paymentmethod_test

import (
	"testing"

	"donbalon/internal/domain/paymentmethod"
	"donbalon/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestInitialReservationStatus(t *testing.T) {
	tests := []struct {
		description string
		want        reservation.Status
	}{
		{"Efectivo", reservation.StatusPending},
		{"Pago en EFECTIVO en el club", reservation.StatusPending},
		{"cash", reservation.StatusPending},
		{"Tarjeta de crédito", reservation.StatusPaid},
		{"Transferencia", reservation.StatusPaid},
		{"Mercado Pago", reservation.StatusPaid},
		{"", reservation.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			m := paymentmethod.New(1, tt.description)
			assert.Equal(t, tt.want, m.InitialReservationStatus())
			assert.Equal(t, tt.want == reservation.StatusPending, m.IsCash())
		})
	}
}
