// Package main provides the park import CLI: it loads a legacy .sc6/.sv6
// file, migrates it into a world model, logs a summary, and optionally
// writes a YAML report and records the scenario in the catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tomlankhorst/OpenRCT2/internal/catalog"
	"github.com/tomlankhorst/OpenRCT2/internal/config"
	"github.com/tomlankhorst/OpenRCT2/internal/importer"
	"github.com/tomlankhorst/OpenRCT2/internal/objects"
	"github.com/tomlankhorst/OpenRCT2/internal/observability"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// report is the YAML park summary written with -report.
type report struct {
	Filename     string `yaml:"filename"`
	Scenario     string `yaml:"scenario"`
	Details      string `yaml:"details,omitempty"`
	MapSize      int32  `yaml:"map_size"`
	Rides        int    `yaml:"rides"`
	GuestsInPark uint16 `yaml:"guests_in_park"`
	ParkRating   uint16 `yaml:"park_rating"`
	Cash         int32  `yaml:"cash"`
	ParkValue    int32  `yaml:"park_value"`
	NewsItems    int    `yaml:"news_items"`
	PeepSpawns   int    `yaml:"peep_spawns"`
}

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	reportPath := flag.String("report", "", "write a YAML park summary to this path")
	allowBadChecksum := flag.Bool("allow-invalid-checksum", false, "skip scenario checksum validation")
	skipObjectCheck := flag.Bool("skip-object-check", false, "skip required-object validation")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: parkimport [flags] <park.sc6|park.sv6>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *allowBadChecksum {
		cfg.Importer.AllowInvalidChecksum = true
	}
	if *skipObjectCheck {
		cfg.Importer.SkipObjectCheck = true
	}

	log, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, cfg, path, *reportPath); err != nil {
		log.Error("import failed", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger, cfg config.Config, path, reportPath string) error {
	start := time.Now()

	var repo objects.Repository
	if len(cfg.Importer.ObjectIdentifiers) > 0 {
		repo = objects.NewInMemoryRepository(cfg.Importer.ObjectIdentifiers...)
	} else {
		repo = objects.PermissiveRepository{}
	}

	imp := importer.New(log, repo, importer.Options{
		AllowInvalidChecksum: cfg.Importer.AllowInvalidChecksum,
		SkipObjectCheck:      cfg.Importer.SkipObjectCheck,
	})

	t0 := time.Now()
	entries, err := imp.Load(path)
	if err != nil {
		return err
	}
	required := 0
	for _, e := range entries {
		if !e.IsEmpty() {
			required++
		}
	}
	log.Info("park loaded",
		zap.String("path", path),
		zap.Int("requiredObjects", required),
		zap.Duration("elapsed", time.Since(t0)))

	t1 := time.Now()
	w := world.New()
	if err := imp.Import(w); err != nil {
		return err
	}
	log.Info("world populated",
		zap.String("scenario", w.Scenario.Name),
		zap.Duration("elapsed", time.Since(t1)))

	if reportPath != "" {
		if err := writeReport(w, reportPath); err != nil {
			return err
		}
		log.Info("report written", zap.String("path", reportPath))
	}

	if cfg.Catalog.Enabled {
		if err := recordScenario(log, cfg, w, path); err != nil {
			return err
		}
	}

	log.Info("import complete", zap.Duration("total", time.Since(start)))
	return nil
}

func writeReport(w *world.World, path string) error {
	rep := report{
		Filename:     w.Scenario.Filename,
		Scenario:     w.Scenario.Name,
		Details:      w.Scenario.Details,
		MapSize:      w.MapSize,
		Rides:        w.RideCount(),
		GuestsInPark: w.Park.GuestsInPark,
		ParkRating:   w.Park.Rating,
		Cash:         w.Finance.Cash,
		ParkValue:    w.Finance.ParkValue,
		NewsItems:    len(w.NewsItems),
		PeepSpawns:   len(w.PeepSpawns),
	}
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("serialising report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}

func recordScenario(log *zap.Logger, cfg config.Config, w *world.World, path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := catalog.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	sourceType := catalog.SourceSavedGame
	if strings.EqualFold(filepath.Ext(path), ".sc6") {
		sourceType = catalog.SourceScenario
	}

	repo := catalog.NewScenarioRepository(pool.DB())
	entry, err := repo.Record(ctx, catalog.EntryFromWorld(w, sourceType))
	if err != nil {
		return err
	}
	log.Info("scenario catalogued",
		zap.String("id", entry.ID.String()),
		zap.String("filename", entry.Filename))
	return nil
}
