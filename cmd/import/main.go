// Command import loads an observance catalog from YAML into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -yaml data/observances.yaml -db data/khronos.db
//
// This tool:
// 1. Parses and validates every entry in the YAML file
// 2. Creates/opens the SQLite database and runs migrations
// 3. Upserts all observances by name in a single transaction
//
// The import is idempotent: entries are matched by name and updated in place.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/khronos/internal/database"
	"github.com/zapponejosh/khronos/internal/observance"
)

// seedFile is the YAML layout of the catalog.
type seedFile struct {
	Observances []seedEntry `yaml:"observances"`
}

type seedEntry struct {
	Name        string `yaml:"name"`
	Calendar    string `yaml:"calendar"`
	Kind        string `yaml:"kind"`
	Month       int    `yaml:"month"`
	Day         int    `yaml:"day"`
	OffsetDays  int    `yaml:"offset_days"`
	Description string `yaml:"description"`
}

func main() {
	// Parse command line flags
	yamlPath := flag.String("yaml", "data/observances.yaml", "Path to observance catalog")
	dbPath := flag.String("db", "data/khronos.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Run import
	if err := run(*yamlPath, *dbPath, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(yamlPath, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read, parse and validate YAML
	// =========================================================================
	logger.Info("reading YAML file", slog.String("path", yamlPath))

	f, err := os.Open(yamlPath)
	if err != nil {
		return fmt.Errorf("open YAML file: %w", err)
	}
	defer f.Close()

	observances, err := parseSeed(f)
	if err != nil {
		return err
	}
	logger.Info("parsed YAML", slog.Int("observances", len(observances)))

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Upsert in a transaction
	// =========================================================================
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		for i := range observances {
			o := &observances[i]
			if err := tx.UpsertObservance(ctx, o); err != nil {
				return fmt.Errorf("upsert %q: %w", o.Name, err)
			}
			logger.Debug("upserted observance", slog.Int64("id", o.ID), slog.String("name", o.Name))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}

	// =========================================================================
	// Step 4: Verify import
	// =========================================================================
	stats, err := db.GetObservanceStats(ctx)
	if err != nil {
		return fmt.Errorf("count observances: %w", err)
	}

	elapsed := time.Since(startTime)
	logger.Info("import verified",
		slog.Int("total", stats.Total),
		slog.Any("by_calendar", stats.ByCalendar),
		slog.Duration("elapsed", elapsed),
	)

	// Print summary
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Observances in file:  %d\n", len(observances))
	fmt.Printf("Observances stored:   %d\n", stats.Total)
	for cal, n := range stats.ByCalendar {
		fmt.Printf("  %-19s %d\n", cal+":", n)
	}
	fmt.Printf("Time elapsed:         %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// parseSeed decodes a catalog and validates every entry. All invalid entries
// are reported together.
func parseSeed(r io.Reader) ([]database.Observance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed seedFile
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	var (
		out      []database.Observance
		problems []string
		seen     = map[string]bool{}
	)
	for i, e := range seed.Observances {
		o := database.Observance{
			Name:       strings.TrimSpace(e.Name),
			Calendar:   strings.ToLower(strings.TrimSpace(e.Calendar)),
			Kind:       database.Kind(strings.ToLower(e.Kind)),
			Month:      e.Month,
			Day:        e.Day,
			OffsetDays: e.OffsetDays,
		}
		if d := strings.TrimSpace(e.Description); d != "" {
			o.Description = &d
		}

		if err := observance.Validate(o); err != nil {
			problems = append(problems, fmt.Sprintf("entry %d (%s): %v", i+1, o.Name, err))
			continue
		}
		if seen[o.Name] {
			problems = append(problems, fmt.Sprintf("entry %d: duplicate name %q", i+1, o.Name))
			continue
		}
		seen[o.Name] = true
		out = append(out, o)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid catalog:\n  %s", strings.Join(problems, "\n  "))
	}
	return out, nil
}
