package eventtest

import (
	"context"
	"sync"

	"donbalon/internal/usecase/shared"
)

// RecordingPublisher keeps published events in memory for assertions.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []shared.ReservationEvent
}

func (r *RecordingPublisher) Publish(_ context.Context, event shared.ReservationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *RecordingPublisher) Events() []shared.ReservationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.ReservationEvent, len(r.events))
	copy(out, r.events)
	return out
}
