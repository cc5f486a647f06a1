package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"calaudit/internal/config"
	"calaudit/internal/schedule"
)

var ScheduleCommand = _scheduleCommand{
	Name:        "schedule",
	Description: "Install the once-daily audit trigger and keep running",
}

type _scheduleCommand struct {
	Name        string
	Description string
}

func (c _scheduleCommand) Run(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, args []string) error {
	d, err := newDeps(cfg, logger)
	if err != nil {
		return err
	}

	sched := schedule.New()
	added, err := sched.Ensure("daily-audit", cfg.Schedule.Spec, func() {
		d.auditor.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule spec %q: %w", cfg.Schedule.Spec, err)
	}
	if added {
		logger.Infow("daily audit installed", "spec", cfg.Schedule.Spec)
	} else {
		logger.Info("daily audit was already installed")
	}

	sched.Start()
	<-ctx.Done()

	logger.Info("shutting down")
	sched.Stop()
	sched.RemoveAll()
	return nil
}
