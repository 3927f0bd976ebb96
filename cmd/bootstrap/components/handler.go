package components

import (
	"donbalon/internal/handler"
	"donbalon/internal/handler/api"
	"donbalon/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAdminReservationHandler,
		api.NewCourtHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, a *api.AdminReservationHandler, c *api.CourtHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Admin: a, Court: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)
