package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"calaudit/internal"
	"calaudit/internal/config"
)

var ConfigureCommand = _configureCommand{
	Name:        "configure",
	Description: "Authorize the application and pick the calendar to audit",
}

type _configureCommand struct {
	Name        string
	Description string
}

func (c _configureCommand) Run(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger, args []string) error {
	d, err := newDeps(cfg, logger)
	if err != nil {
		return err
	}

	w := os.Stdout

	authToken, err := d.client.Login(ctx, func(authURL string) {
		fmt.Fprintf(w, "Go to the following link in your browser\n%s\n", authURL)
	})
	if err != nil {
		return fmt.Errorf("google: logging in: %w", err)
	}
	userEmail, err := d.client.EmailForToken(ctx, authToken)
	if err != nil {
		return fmt.Errorf("google: getting email: %w", err)
	}

	acc := internal.Account{
		Platform: googleProvider,
		Name:     userEmail,
		Auth: func() string {
			v, _ := json.Marshal(authToken)
			return string(v)
		}(),
	}
	fmt.Fprintf(w, "Saving account %q for %q provider...\n", acc.Name, acc.Platform)
	err = d.storage.AddAccount(ctx, &acc)
	if err != nil {
		return fmt.Errorf("saving account: %w", err)
	}

	cal := &internal.Calendar{
		Name:       "primary",
		ProviderID: "primary",
		Account:    acc,
	}
	fmt.Fprint(w, "Calendar ID to audit (empty for primary): ")
	var providerID string
	fmt.Scanln(&providerID)
	if providerID != "" {
		cal.Name = providerID
		cal.ProviderID = providerID
	}
	cal.ID = acc.ID() + "/" + cal.Name

	err = d.storage.SetAuditCalendar(ctx, cal)
	if err != nil {
		return fmt.Errorf("saving calendar: %w", err)
	}
	fmt.Fprintln(w, "Done! Run `calaudit audit` to audit now or `calaudit schedule` to run daily.")
	return nil
}
