package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Dosada05/tournament-brackets/brackets"
	"github.com/Dosada05/tournament-brackets/models"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type standingsReport struct {
	StageID    int                      `json:"stage_id" yaml:"stage_id"`
	StageType  models.StageType         `json:"stage_type" yaml:"stage_type"`
	Ranker     string                   `json:"ranker" yaml:"ranker"`
	Placements []models.PlacementRecord `json:"placements" yaml:"placements"`
	Decided    int                      `json:"decided_matches" yaml:"decided_matches"`
	Skipped    map[string]int           `json:"skipped_matches,omitempty" yaml:"skipped_matches,omitempty"`
}

func standingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "standings",
		Usage: "compute standings offline from a viewer-data JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "path to the snapshot JSON, or \"-\" for stdin",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: json or yaml",
				Value:   formatJSON,
			},
		},
		Action: func(cCtx *cli.Context) error {
			var in io.Reader = os.Stdin
			if path := cCtx.String("input"); path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			return writeStandings(in, cCtx.App.Writer, cCtx.String("format"))
		},
	}
}

func writeStandings(in io.Reader, out io.Writer, format string) error {
	if format != formatJSON && format != formatYAML {
		return fmt.Errorf("unknown format %q: want json or yaml", format)
	}

	var snap models.StageSnapshot
	if err := json.NewDecoder(in).Decode(&snap); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	result, err := brackets.ComputeStandings(snap)
	if err != nil {
		return err
	}

	report := standingsReport{
		StageID:    snap.Stage.ID,
		StageType:  snap.Stage.Type,
		Ranker:     result.Ranker,
		Placements: result.Placements,
		Decided:    result.Stats.Decided,
	}
	if len(result.Stats.Skipped) > 0 {
		report.Skipped = make(map[string]int, len(result.Stats.Skipped))
		for reason, n := range result.Stats.Skipped {
			report.Skipped[string(reason)] = n
		}
	}

	if format == formatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
