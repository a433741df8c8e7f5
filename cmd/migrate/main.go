// Команда migrate управляет схемой базы данных вне API-сервера.
//
//	migrate up            применить все миграции
//	migrate down [N]      откатить N миграций (по умолчанию 1)
//	migrate force VERSION сбросить dirty-состояние на VERSION
//	migrate version       показать текущую версию
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-questions-api/internal/config"
	"github.com/yourusername/trivia-questions-api/pkg/database"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	sourceURL := os.Getenv("MIGRATIONS_URL")
	if sourceURL == "" {
		sourceURL = database.DefaultMigrationsURL
	}
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(m, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("migrate %s: %v", os.Args[1], err)
	}
}

// migrator - подмножество *migrate.Migrate, используемое командами
type migrator interface {
	Up() error
	Steps(n int) error
	Force(version int) error
	Version() (uint, bool, error)
}

func run(m migrator, command string, args []string) error {
	switch command {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No change: database is up to date.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println("Migrations applied.")
		return nil

	case "down":
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid number of steps %q", args[0])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil {
			return err
		}
		fmt.Printf("Rolled back %d migration(s).\n", steps)
		return nil

	case "force":
		if len(args) == 0 {
			return errors.New("force requires a version")
		}
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", version)
		if err := m.Force(version); err != nil {
			return err
		}
		fmt.Println("Success! Dirty state cleaned.")
		return nil

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("No migrations applied yet.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Version: %d (dirty: %t)\n", version, dirty)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate up | down [N] | force VERSION | version")
}
