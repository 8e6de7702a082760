package main

import (
	"flag"
	"log"

	"github.com/nagoyameshi/backend/config"
	"github.com/nagoyameshi/backend/internal/database"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if *rollback {
		if err := database.Rollback(db, database.Migrations()); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Rollback complete")
		return
	}

	if err := database.RunMigrations(db, database.Migrations()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("All migrations applied successfully")
}
