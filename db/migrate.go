// file: db/migrate.go

package db

import (
	"fmt"

	"github.com/derangga/laundry-app-sub001/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies pending migrations from sourcePath against the
// database at connURL. A database already at the latest version is not an
// error.
func RunMigrations(sourcePath, connURL string) error {
	mig, err := migrate.New(sourcePath, connURL)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}

	logger.Log.Info("Database migrations applied")
	return nil
}
