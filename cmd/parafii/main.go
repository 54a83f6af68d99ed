// Copyright 2025 Oleh Yurkevych
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
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	parafii "github.com/yurkevych/parafii"
	"github.com/yurkevych/parafii/core"
	"github.com/yurkevych/parafii/scrape"
	"github.com/yurkevych/parafii/search"
	"github.com/yurkevych/parafii/storage"
	badgerstore "github.com/yurkevych/parafii/storage/badger"
	githubstore "github.com/yurkevych/parafii/storage/github"
)

func main() {
	app := &cli.App{
		Name:  "parafii",
		Usage: "Parish records search and archive listing sync",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Fuzzy search parishes by settlement name",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to the data artifacts directory",
						Value:   "data",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results (0 for all)",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print results as JSON",
					},
				},
			},
			{
				Name:      "parish",
				Usage:     "Show a catalog entry with its record books",
				ArgsUsage: "<parish-id>",
				Action:    parishCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to the data artifacts directory",
						Value:   "data",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Summarize the loaded artifacts",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "data",
						Aliases: []string{"d"},
						Usage:   "Path to the data artifacts directory",
						Value:   "data",
					},
				},
			},
			{
				Name:   "sync",
				Usage:  "Fetch the archive case listing and update the stored artifact",
				Action: syncCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Sync into a local BadgerDB directory instead of GitHub",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	idx, err := parafii.NewIndex(c.String("data"))
	if err != nil {
		return err
	}

	var opts []search.Option
	if limit := c.Int("limit"); limit > 0 {
		opts = append(opts, search.WithLimit(limit))
	}
	searcher, err := idx.NewSearcher(opts...)
	if err != nil {
		return err
	}

	results := searcher.Search(query)
	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("Nothing found.")
		return nil
	}
	for _, result := range results {
		location := result.Parish.RegionName
		if location == "" {
			location = "поза основною ієрархією"
		}
		fmt.Printf("%.3f  %-40s  %s = %q  (%s)\n",
			result.FinalScore, result.Parish.DisplayName,
			result.MatchedField, result.MatchedValue, location)
	}
	return nil
}

func parishCommand(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("parish id is required")
	}

	idx, err := parafii.NewIndex(c.String("data"))
	if err != nil {
		return err
	}

	parish, err := idx.Parish(id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(parish)
}

func statsCommand(c *cli.Context) error {
	idx, err := parafii.NewIndex(c.String("data"))
	if err != nil {
		return err
	}

	stats := idx.Stats()
	fmt.Printf("Parishes:    %d\n", stats.Parishes)
	fmt.Printf("Settlements: %d\n", stats.Settlements)
	for _, religion := range []core.Religion{
		core.ReligionOrthodox, core.ReligionGreekCatholic, core.ReligionRomanCatholic, core.ReligionLutheran, core.ReligionJudaism,
	} {
		if n := stats.ByReligion[religion]; n > 0 {
			fmt.Printf("  %-20s %d\n", religion.Label(), n)
		}
	}
	for _, category := range core.BookCategories {
		if n := stats.Books[category]; n > 0 {
			fmt.Printf("  books/%-14s %d\n", category, n)
		}
	}
	return nil
}

func syncCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := scrape.LoadConfig()
	if err != nil {
		return err
	}

	var store storage.FondStore
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badgerstore.OpenBackend(dbPath, false)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		store, err = badgerstore.NewStore(backend)
		if err != nil {
			backend.Close()
			return err
		}
	} else {
		owner, name, err := cfg.SplitRepo()
		if err != nil {
			return err
		}
		store, err = githubstore.NewStore(owner, name, cfg.GitHubBranch, cfg.GitHubToken)
		if err != nil {
			return err
		}
	}
	defer store.Close()

	fetcher, err := scrape.NewFetcher(cfg)
	if err != nil {
		return err
	}

	job, err := scrape.NewJob(fetcher, store, cfg.StorePath)
	if err != nil {
		return err
	}

	if err := job.Run(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	return nil
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
