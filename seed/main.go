package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/rehab_api/seed/seeders"
	"github.com/lac-hong-legacy/rehab_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, players")
		driver   = flag.String("driver", services.DriverSqlite, "Database driver: sqlite, postgres")
		dsn      = flag.String("db", "", "Database path or URL (overrides DATABASE_URL env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databaseURL := *dsn
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			databaseURL = "rehab.db"
		}
	}

	db, err := services.OpenDatabase(*driver, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := services.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to %s database", *driver)

	mainSeeder := seeders.NewMainSeeder(services.NewDatabaseService(db), services.DefaultPasscodeHashCost)
	ctx := context.Background()

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(ctx); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "players":
		log.Println("Seeding players only...")
		if _, err := mainSeeder.SeedPlayersOnly(ctx); err != nil {
			log.Fatalf("Failed to seed players: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all' or 'players'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Println(`
Database Seeding Tool for the Rehab Games API

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, players
  -driver string
        Database driver, sqlite or postgres (default "sqlite")
  -db string
        Database path or URL (overrides DATABASE_URL environment variable)
  -help
        Show this help message

Examples:
  # Seed demo players, sessions and results into ./rehab.db
  go run seed/main.go

  # Seed only players into a postgres database
  go run seed/main.go -type=players -driver=postgres -db=postgres://localhost/rehab

Environment Variables:
  DATABASE_URL - Default database path or URL (default: rehab.db)
`)
}
