package commands

import (
	"context"
	"log/slog"

	"donbalon/internal/usecase/shared"
)

// publish runs after commit; a broker failure does not undo a committed change.
func publish(ctx context.Context, publisher shared.EventPublisher, event shared.ReservationEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Error("failed to publish reservation event",
			"type", event.Type,
			"reservation_id", event.ReservationID,
			"error", err.Error())
	}
}
