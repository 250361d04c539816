// Package db opens the gorm connection to the journal store.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stock_journal/internal/config"
	authadapters "stock_journal/internal/feature/auth/adapters"
	authentity "stock_journal/internal/feature/auth/domain/entity"
	journaladapters "stock_journal/internal/feature/journal/adapters"
)

// connectTimeout bounds the retry loop against a store that is still coming up.
const connectTimeout = 60 * time.Second

// Open connects to postgres, retrying until the deadline, and optionally
// runs schema migrations. An unreachable store is returned as an error, not
// a panic: the caller decides how to surface it.
func Open(cfg config.Postgres, runMigrations bool) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect to store after %s: %w", connectTimeout, err)
		}
		slog.Warn("store connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&journaladapters.EntryModel{},
		); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
	}

	return db, nil
}
