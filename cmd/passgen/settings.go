package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/passgen/internal/projectconfig"
	"github.com/spboyer/passgen/internal/scoring"
	"github.com/spboyer/passgen/internal/wordlist"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// configDir is where .passgen.yaml lookup starts. Tests point it at a
// temporary directory.
var configDir = "."

var printer = message.NewPrinter(language.English)

func loadConfig() (*projectconfig.ProjectConfig, error) {
	return projectconfig.Load(configDir)
}

// loadVocabulary returns the list at path, or the built-in list when path
// is empty.
func loadVocabulary(path string) (*wordlist.Vocabulary, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	return wordlist.Load(path)
}

// buildScorer composes the scorers named on the command line, falling back
// to the configured ones when names is empty.
func buildScorer(cfg *projectconfig.ProjectConfig, names []string) (*scoring.Composite, error) {
	var specs []scoring.Spec
	if len(names) > 0 {
		for _, n := range names {
			t, err := scoring.ParseType(n)
			if err != nil {
				return nil, err
			}
			specs = append(specs, scoring.Spec{Type: t})
		}
	} else {
		var err error
		if specs, err = cfg.ScorerSpecs(); err != nil {
			return nil, fmt.Errorf("config scorers: %w", err)
		}
	}

	scorer, err := scoring.Build(specs)
	if err != nil {
		return nil, fmt.Errorf("building scorers: %w", err)
	}
	return scorer, nil
}

// scorerNames lists the constituents of c for display.
func scorerNames(c *scoring.Composite) string {
	parts := c.Scorers()
	names := make([]string, len(parts))
	for i, s := range parts {
		names[i] = s.Name()
	}
	return strings.Join(names, ", ")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// printTable writes rows with columns aligned by display width. The first
// row is the header.
func printTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); i < len(widths) && cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for _, row := range rows {
		var b strings.Builder
		b.WriteString("  ")
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(padRight(cell, widths[i]))
			b.WriteString("  ")
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " ")) //nolint:errcheck
	}
}
