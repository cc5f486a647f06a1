package main

import (
	"context"

	"go.uber.org/zap"

	"calaudit/internal/config"
)

var AuditCommand = _auditCommand{
	Name:        "audit",
	Description: "Run the unconfirmed-meeting audit once, now",
}

type _auditCommand struct {
	Name        string
	Description string
}

func (c _auditCommand) Run(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, args []string) error {
	d, err := newDeps(cfg, logger)
	if err != nil {
		return err
	}
	d.auditor.Run(ctx)
	return nil
}
