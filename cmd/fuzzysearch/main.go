// Copyright 2026 Esurv
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	fuzzysearch "github.com/pguyard-esurv/fuzzy-search"
	"github.com/pguyard-esurv/fuzzy-search/config"
	"github.com/pguyard-esurv/fuzzy-search/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fuzzy-search",
		Usage: "Approximate phrase matching with abbreviation expansion and suppression rules",
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
				Usage:     "Match a query against candidate phrases",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to TOML configuration file (abbreviations, suppression rules)",
					},
					&cli.IntFlag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Minimum inclusive similarity score (0-100)",
						Value:   core.DefaultThreshold,
					},
					&cli.BoolFlag{
						Name:  "partial",
						Usage: "Score with the best-window partial ratio instead of the whole-string ratio",
					},
					&cli.StringFlag{
						Name:  "phrases-file",
						Usage: "File with one candidate phrase per line",
					},
					&cli.StringSliceFlag{
						Name:    "phrase",
						Aliases: []string{"p"},
						Usage:   "Candidate phrase (repeatable)",
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
	if c.NArg() == 0 {
		return fmt.Errorf("query argument is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	phrases := c.StringSlice("phrase")
	if path := c.String("phrases-file"); path != "" {
		filePhrases, err := readPhrases(path)
		if err != nil {
			return err
		}
		phrases = append(phrases, filePhrases...)
	}
	if len(phrases) == 0 {
		return fmt.Errorf("no candidate phrases: use --phrase or --phrases-file")
	}

	engine, err := fuzzysearch.NewEngine(cfg)
	if err != nil {
		return err
	}

	matches := engine.Search(query, phrases, core.SearchConfig{
		Threshold:       c.Int("threshold"),
		UsePartialRatio: c.Bool("partial"),
	})

	fmt.Printf("Found %d matches\n", len(matches))
	for i, match := range matches {
		fmt.Printf("%d: '%s' [%d]\n", i, match.Phrase, match.Score)
	}
	return nil
}

// readPhrases loads one candidate phrase per line; blank lines are skipped.
func readPhrases(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading phrases file: %w", err)
	}

	var phrases []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			phrases = append(phrases, line)
		}
	}
	return phrases, nil
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
