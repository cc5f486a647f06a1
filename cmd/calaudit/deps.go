package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"calaudit/calendar"
	"calaudit/calendar/google"
	"calaudit/internal/audit"
	"calaudit/internal/config"
	"calaudit/internal/sqlite"
)

type deps struct {
	storage *sqlite.Storage
	client  *google.Client
	auditor *audit.Auditor
}

func newDeps(cfg *config.Config, logger *zap.SugaredLogger) (*deps, error) {
	db, err := sql.Open(sqlite.DriverName, cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	storage := sqlite.NewStorage(db)

	credJSON, err := os.ReadFile(cfg.Google.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	client, err := google.NewClient(credJSON, logger)
	if err != nil {
		return nil, err
	}

	mux := calendar.NewMux()
	mux.Register(googleProvider, client)

	auditor := audit.New(logger, mux, storage, google.NewMailer(client))
	auditor.Lookahead = cfg.Audit.LookaheadDays
	auditor.Recipient = cfg.Audit.Recipient

	return &deps{
		storage: storage,
		client:  client,
		auditor: auditor,
	}, nil
}
