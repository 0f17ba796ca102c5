package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending up migration for the given driver.
// The schema is owned by the SQL files under migrations/, not by gorm AutoMigrate.
func Migrate(db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	dialect := strings.ToLower(driver)
	var (
		target migratedb.Driver
		name   string
		dir    string
	)
	switch dialect {
	case "postgres", "postgresql":
		target, err = migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
		name, dir = "postgres", "migrations/postgres"
	case "sqlite", "":
		target, err = sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
		name, dir = "sqlite3", "migrations/sqlite"
	default:
		return fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to prepare %s migration driver: %w", name, err)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	defer source.Close()

	// m.Close would also close sqlDB, which stays owned by gorm
	m, err := migrate.NewWithInstance("iofs", source, name, target)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.WithFields(logrus.Fields{
		"db_driver":      dialect,
		"schema_version": version,
		"dirty":          dirty,
	}).Info("Database schema is up to date")
	return nil
}
