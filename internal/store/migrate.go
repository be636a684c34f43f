package store

import (
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitSchema creates the entity tables. It is idempotent: running it
// against a database that already carries the schema applies nothing,
// and an "already exists" conflict is informational rather than fatal.
func (s *SQLiteStore) InitSchema() error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			s.logger.Info("tables already exist, skipping creation", slog.Any("err", err))
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	s.logger.Info("database schema ready", slog.String("path", s.path))
	return nil
}
