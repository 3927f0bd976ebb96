package bootstrap

import (
	"time"

	"donbalon/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCalendarLocation,
	),
)

// NewCalendarLocation is the zone that decides which calendar day "today" is.
func NewCalendarLocation(cfg config.Config) *time.Location {
	return cfg.Calendar.Location()
}
