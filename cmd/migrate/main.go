// Package main provides the schema migration runner for the scenario
// catalog database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/tomlankhorst/OpenRCT2/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	source := flag.String("migrations", "migrations", "directory holding the migration files")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	flag.Parse()

	if err := run(*configPath, *source, *direction, *steps); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, source, direction string, steps int) error {
	start := time.Now()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	m, err := migrate.New("file://"+source, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	default:
		return fmt.Errorf("invalid direction %q: must be 'up' or 'down'", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running catalog migrations %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Printf("catalog schema already current (version=%d dirty=%v) [%s]\n",
			version, dirty, time.Since(start).Round(time.Millisecond))
	} else {
		fmt.Printf("catalog schema migrated %s to version=%d dirty=%v [%s]\n",
			direction, version, dirty, time.Since(start).Round(time.Millisecond))
	}
	return nil
}
