package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spboyer/passgen/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	scoreScorers []string
	scoreJSON    bool
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <text> [text ...]",
		Short: "Score existing passphrases for typing comfort",
		Long: `Score rates each argument with every configured scorer and prints the
per-scorer values and their average.

Whitespace inside an argument is ignored, so "correct horse battery" is
scored as it would be typed without spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: scoreCommandE,
	}

	cmd.Flags().StringSliceVar(&scoreScorers, "scorer", nil, "Scorer to include (repeatable, default from config)")
	cmd.Flags().BoolVar(&scoreJSON, "json", false, "Print results as JSON")

	return cmd
}

type partOutput struct {
	Scorer string   `json:"scorer"`
	Score  *float64 `json:"score,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type scoreOutput struct {
	Input     string       `json:"input"`
	Composite *float64     `json:"composite,omitempty"`
	Parts     []partOutput `json:"parts"`
	Error     string       `json:"error,omitempty"`
}

func scoreCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	scorer, err := buildScorer(cfg, scoreScorers)
	if err != nil {
		return err
	}

	results := make([]scoreOutput, 0, len(args))
	failed := 0
	for _, arg := range args {
		res := scoreOne(scorer, arg)
		if res.Error != "" {
			failed++
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Fprintln(out, string(data)) //nolint:errcheck
	} else {
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(out) //nolint:errcheck
			}
			fmt.Fprintf(out, "%s\n", res.Input) //nolint:errcheck
			rows := [][]string{{"SCORER", "SCORE"}}
			for _, p := range res.Parts {
				rows = append(rows, []string{p.Scorer, formatScore(p.Score, p.Error)})
			}
			rows = append(rows, []string{string(scoring.TypeComposite), formatScore(res.Composite, res.Error)})
			printTable(out, rows)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be scored", failed, len(args))
	}
	return nil
}

func scoreOne(scorer *scoring.Composite, input string) scoreOutput {
	text := strings.Join(strings.Fields(input), "")
	b := scorer.Breakdown(text)

	res := scoreOutput{Input: input, Parts: make([]partOutput, 0, len(b.Parts))}
	for _, p := range b.Parts {
		po := partOutput{Scorer: p.Name}
		if p.Err != nil {
			po.Error = p.Err.Error()
		} else {
			v := p.Score
			po.Score = &v
		}
		res.Parts = append(res.Parts, po)
	}
	if b.Err != nil {
		res.Error = b.Err.Error()
	} else {
		v := b.Score
		res.Composite = &v
	}
	return res
}

func formatScore(v *float64, errMsg string) string {
	if v == nil {
		if errMsg == "" {
			return "n/a"
		}
		return "error: " + errMsg
	}
	return fmt.Sprintf("%.3f", *v)
}
