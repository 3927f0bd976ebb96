package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"donbalon/internal/pkg/config"
	"donbalon/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const sweepTimeout = 5 * time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartSweepScheduler,
	),
)

// StartSweepScheduler runs the expiry sweep on SWEEP_SCHEDULE. Overlapping runs are skipped.
func StartSweepScheduler(lc fx.Lifecycle, cfg config.Config, sweep commands.SweepCommands, logger *slog.Logger) error {
	if !cfg.Sweep.Enabled {
		logger.Info("期限切れスイープは無効です")
		return nil
	}

	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(cfg.Sweep.Schedule, func() { runSweep(sweep, logger) }); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("⏰ 期限切れスイープを開始します", "schedule", cfg.Sweep.Schedule)
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("期限切れスイープを停止します")
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

func runSweep(sweep commands.SweepCommands, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := sweep.Run(ctx); err != nil {
		logger.Error("期限切れスイープに失敗しました", "error", err.Error())
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
