// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/berkut"
	"github.com/poiesic/berkut/core"
	"github.com/poiesic/berkut/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "berkut",
		Usage: "Local registry of restricted materials with typo-tolerant search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Rebuild the registry from a source file",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the source file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Source format: txt (structured text) or csv (delimited table)",
						Value: "txt",
					},
				},
			},
			{
				Name:   "update",
				Usage:  "Reimport a source file only if its content changed",
				Action: updateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the source file",
						Required: true,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the registry",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "check",
				Usage:  "Verify the registry is readable and non-empty",
				Action: checkCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "delete",
				Usage:  "Delete the whole registry database",
				Action: deleteCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func sourceKind(name string) (core.SourceKind, error) {
	switch strings.ToLower(name) {
	case "txt":
		return core.SourceStructuredText, nil
	case "csv":
		return core.SourceDelimitedTable, nil
	default:
		return 0, fmt.Errorf("invalid source format %q: must be txt or csv", name)
	}
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	kind, err := sourceKind(c.String("source"))
	if err != nil {
		return err
	}

	content, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	db, err := berkut.NewDatabase(c.String("db"),
		berkut.WithPipelineOptions(ingestion.WithProgress(os.Stderr, 250)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	label := filepath.Base(c.String("file"))
	result, err := db.Import(ctx, kind, label, string(content))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d records from %s\n", result.RecordCount, label)
	return nil
}

func updateCommand(c *cli.Context) error {
	ctx := context.Background()

	content, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	db, err := berkut.NewDatabase(c.String("db"),
		berkut.WithPipelineOptions(ingestion.WithProgress(os.Stderr, 250)))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	label := filepath.Base(c.String("file"))
	result, err := db.Update(ctx, label, string(content))
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	if !result.Updated {
		fmt.Println("Content unchanged, nothing to do")
		return nil
	}
	fmt.Printf("Updated: %+d records\n", result.NewRecords)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	db, err := berkut.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	results, err := db.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No matches for %q\n", query)
		return nil
	}

	for _, result := range results {
		marker := ""
		if result.Typo {
			marker = " (typo match)"
		}
		fmt.Printf("№ %d  similarity %.2f%s  date %s\n", result.Material.Id,
			result.Similarity, marker, result.Material.Date)
	}
	return nil
}

func checkCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := berkut.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	count, err := db.CheckIntegrity(ctx)
	if err != nil {
		if errors.Is(err, berkut.ErrEmptyDatabase) {
			return fmt.Errorf("database is empty: run an import first")
		}
		return err
	}

	fmt.Printf("OK: %d records\n", count)
	return nil
}

func deleteCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := berkut.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	fmt.Println("Database deleted")
	return nil
}
