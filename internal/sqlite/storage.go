package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"calaudit/internal"
)

const DriverName = "sqlite3"

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sql.DB) *Storage {
	s := &Storage{
		db: sqlx.NewDb(db, DriverName),
	}
	err := s.RunMigrations()
	if err != nil {
		panic(fmt.Sprintf("sqlite: running migrations: %v", err))
	}
	return s
}

func (s Storage) AddAccount(ctx context.Context, account *internal.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, auth) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET auth=?;
	`, account.ID(), account.Auth, account.Auth)
	return err
}

// SetAuditCalendar marks cal as audited for its account, replacing the
// provider id if it was registered before.
func (s Storage) SetAuditCalendar(ctx context.Context, cal *internal.Calendar) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_calendars (account_id, name, provider_id)
		VALUES (?, ?, ?)
		ON CONFLICT(account_id, name) DO UPDATE
			SET provider_id = ?;
	`, cal.Account.ID(), cal.Name, cal.ProviderID, cal.ProviderID)
	return err
}

func (s Storage) AuditCalendars(ctx context.Context) ([]*internal.Calendar, error) {
	var cals []Calendar

	err := s.db.SelectContext(ctx, &cals, `
		SELECT c.account_id, c.name, c.provider_id, a.auth
		FROM audit_calendars c
		INNER JOIN accounts a ON a.id = c.account_id
	`)
	if err != nil {
		return nil, err
	}

	res := make([]*internal.Calendar, len(cals))
	for i, c := range cals {
		res[i] = c.Convert()
	}
	return res, nil
}
