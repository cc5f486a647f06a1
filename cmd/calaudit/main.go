package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calaudit/internal/config"
	"calaudit/internal/log"
)

const googleProvider = "google"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to load config:", err)
		os.Exit(1)
	}

	logger, err := log.New(log.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case ConfigureCommand.Name:
		err = ConfigureCommand.Run(ctx, cfg, logger, os.Args[2:])
	case AuditCommand.Name:
		err = AuditCommand.Run(ctx, cfg, logger, os.Args[2:])
	case ScheduleCommand.Name:
		err = ScheduleCommand.Run(ctx, cfg, logger, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Errorw("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

func usage() {
	w := os.Stderr
	fmt.Fprintf(w, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintf(w, "  %-10s %s\n", ConfigureCommand.Name, ConfigureCommand.Description)
	fmt.Fprintf(w, "  %-10s %s\n", AuditCommand.Name, AuditCommand.Description)
	fmt.Fprintf(w, "  %-10s %s\n", ScheduleCommand.Name, ScheduleCommand.Description)
}
