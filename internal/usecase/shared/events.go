package shared

import (
	"context"
	"time"
)

const (
	EventReservationRegistered      = "reservation.registered"
	EventReservationStatusChanged   = "reservation.status_changed"
	EventReservationRefundRequested = "reservation.refund_requested"
)

// ReservationEvent is published after the transaction that produced it has committed.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	ClientID      int64     `json:"client_id"`
	From          string    `json:"from,omitempty"`
	Status        string    `json:"status"`
	Total         string    `json:"total"`
	Message       string    `json:"message,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}
