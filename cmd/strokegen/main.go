// Copyright 2021 Conway.
// Licensed under "MIT No Attribution" (MIT-0),
// see <https://spdx.org/licenses/MIT-0>.

/*
Package main implements strokegen, the offline generator for the
stroke-input lookup tables.

Strokegen parses the hand-maintained codepoint-character-sequence
catalogue and the character ranking file, expands each record's
stroke-sequence pattern, and writes two flat lookup tables consumed by
the stroke input method:

  - sequence-exact-characters.txt: one row per concrete stroke
    sequence, listing the characters it spells.
  - sequence-prefix-characters.txt: one row per stroke prefix up to a
    fixed length, pre-aggregating the characters any completion of the
    prefix could spell.

Lines of either input that fail their shape check are not errors: they
are collected into a diagnostics file for human review. A structurally
malformed pattern on an otherwise well-formed record aborts the run
without writing any table.

# Usage

Run in the data directory with default file names:

	strokegen

Point at explicit inputs and enable debug logging:

	strokegen -ranking ranking.txt -catalogue codepoint-character-sequence.txt -d

Also write a MessagePack export of both tables:

	strokegen -bin stroke-tables.bin

# Configuration

File names and prefix bounds live in a TOML file, created with defaults
when missing:

	[input]
	ranking = "ranking.txt"
	catalogue = "codepoint-character-sequence.txt"

	[prefix]
	max_stroke_count = 3
	max_match_count = 20
	full_lookup_row_count = 30000

Command-line flags override the corresponding config entries for one
run without rewriting the file.
*/
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/yawnoc/stroke-input-data/internal/logger"
	"github.com/yawnoc/stroke-input-data/pkg/config"
	"github.com/yawnoc/stroke-input-data/pkg/generator"
)

const (
	Version = "2.1.0"
	AppName = "strokegen"
	gh      = "https://github.com/yawnoc/stroke-input-data"
)

// main resolves config and flags, then hands the run to pkg/generator.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "strokegen.toml", "Path to the TOML config file")
	rankingPath := flag.String("ranking", "", "Ranking source file (overrides config)")
	cataloguePath := flag.String("catalogue", "", "Catalogue source file (overrides config)")
	binaryPath := flag.String("bin", "", "Also write a MessagePack export of both tables")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("[ strokegen ] Generates stroke-input lookup tables")
		vlog.Print("", "version", Version)
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *rankingPath != "" {
		cfg.Input.Ranking = *rankingPath
	}
	if *cataloguePath != "" {
		cfg.Input.Catalogue = *cataloguePath
	}
	if *binaryPath != "" {
		cfg.Output.Binary = *binaryPath
	}

	log.Debugf("inputs: ranking=%s catalogue=%s", cfg.Input.Ranking, cfg.Input.Catalogue)
	log.Debugf("prefix bounds: n=%d cap=%d", cfg.Prefix.MaxStrokeCount, cfg.Prefix.MaxMatchCount)

	if err := generator.New(cfg).Run(); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}
