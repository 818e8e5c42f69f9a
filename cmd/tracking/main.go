package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	trackingapp "backoffice/internal/application/tracking"
	"backoffice/internal/config"
	"backoffice/internal/infrastructure/scheduler"
	"backoffice/internal/infrastructure/storefront"
	"backoffice/pkg/logger"
)

// Runs the live tracking board on its own and logs every transition until
// interrupted. Set STOREFRONT_SEED to replay the same run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := storefront.NewMockSource(cfg.Storefront, lg)

	var sched trackingapp.Scheduler = scheduler.NewTicker()
	if cfg.Tracking.Scheduler == config.SchedulerCron {
		c := scheduler.NewCron()
		defer c.Stop()
		sched = c
	}

	tracker := trackingapp.NewService(src, sched, src, cfg.Tracking.Interval, lg)
	if err := tracker.Start(ctx); err != nil {
		lg.Fatal("start live tracking failed", logger.Error(err))
	}

	<-ctx.Done()
	tracker.Stop()

	for _, o := range tracker.Snapshot() {
		fields := []logger.Field{
			logger.String("order_id", o.ID),
			logger.String("status", string(o.Status)),
			logger.Int("progress", o.Progress),
		}
		if o.HasAlert() {
			fields = append(fields, logger.String("alert", *o.Alert))
		}
		lg.Info("final state", fields...)
	}
	lg.Info("live tracking finished", logger.Int("ticks", tracker.Ticks()))
}
