package main

import (
	"flag"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	dbURL := flag.String("db", "sqlite://app.db", "Database URL (sqlite://... or postgres://...)")
	reset := flag.Bool("reset", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})

	dbConfig, err := database.ConfigFromURL(*dbURL)
	if err != nil {
		log.WithError(err).Fatal("Invalid database url")
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.Migrate(db, dbConfig.Driver); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.WithError(err).Fatal("Failed to reset database")
		}
		if err := database.Seed(db); err != nil {
			log.WithError(err).Fatal("Failed to seed database")
		}
		log.Info("Database reset and seeded with sample data")
		return
	}

	seeded, err := database.SeedIfEmpty(db)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}
	if !seeded {
		log.Info("Database already has data, run with -reset to start over")
	}
}
