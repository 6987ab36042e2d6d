package main

import (
	"context"
	"database/sql"
	"eld-log-service/internal/adapters/cache"
	"eld-log-service/internal/config"
	"eld-log-service/internal/platform/db"
	"eld-log-service/internal/ports"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const usage = `usage: dbtool <command>

commands:
  up            apply all pending geocode cache migrations
  down          roll back the most recent migration
  version       print the current schema version
  seed <file>   load address coordinates from a JSON array file

Postgres is used when DATABASE_URL is set, otherwise SQLite at DB_PATH.`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	conn, dialect, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := run(conn, dialect, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func open() (*sql.DB, db.Dialect, error) {
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err := db.Open(databaseURL)
		return conn, db.Postgres, err
	}

	conn, err := db.OpenSQLite(config.Get("DB_PATH", "data/app.db"))
	return conn, db.SQLite, err
}

func run(conn *sql.DB, dialect db.Dialect, cmd string, args []string) error {
	switch cmd {
	case "up":
		log.Printf("Applying migrations dialect=%s...", dialect)
		if err := db.MigrateUp(conn, dialect); err != nil {
			return err
		}
		log.Println("Schema ready.")

	case "down":
		if err := db.MigrateDown(conn, dialect); err != nil {
			return err
		}
		log.Println("Rolled back one migration.")

	case "version":
		v, dirty, err := db.MigrateVersion(conn, dialect)
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)

	case "seed":
		if len(args) != 1 {
			return fmt.Errorf("seed: expected one file argument\n%s", usage)
		}
		if err := db.MigrateUp(conn, dialect); err != nil {
			return err
		}

		var c ports.GeocodeCache = cache.NewSqliteGeocodeCache(conn)
		if dialect == db.Postgres {
			c = cache.NewSQLGeocodeCache(conn)
		}

		log.Println("Seeding geocode cache...")
		n, err := cache.SeedFromJSON(context.Background(), c, args[0])
		if err != nil {
			return err
		}
		log.Printf("Seeding complete. entries=%d", n)

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	return nil
}
