package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spboyer/passgen/internal/entropy"
	"github.com/spboyer/passgen/internal/generate"
	"github.com/spboyer/passgen/internal/metrics"
	"github.com/spboyer/passgen/internal/passphrase"
	"github.com/spboyer/passgen/internal/projectconfig"
	"github.com/spboyer/passgen/internal/session"
	"github.com/spboyer/passgen/internal/spinner"
	"github.com/spboyer/passgen/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	generateWords       int
	generateTop         int
	generateTrials      int
	generateWorkers     int
	generateSeed        int64
	generateScorers     []string
	generateWordlist    string
	generateSeparator   string
	generateJSON        bool
	generateKeepFailed  bool
	generateVerbose     bool
	generateInteractive bool
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate easy-to-type passphrases",
		Long: `Generate draws many random candidates from the word list, scores each one
for typing comfort, and prints the best few, best first.

Settings come from .passgen.yaml when present; flags override them.
With --interactive you pick the number of words from a menu and can try
several lengths in a row.`,
		Args: cobra.NoArgs,
		RunE: generateCommandE,
	}

	cmd.Flags().IntVarP(&generateWords, "words", "n", projectconfig.DefaultWordCount, "Number of words per passphrase")
	cmd.Flags().IntVarP(&generateTop, "top", "k", projectconfig.DefaultTop, "Number of passphrases to print")
	cmd.Flags().IntVar(&generateTrials, "trials", projectconfig.DefaultTrials, "Number of candidates to draw and score")
	cmd.Flags().IntVar(&generateWorkers, "workers", projectconfig.DefaultWorkers, "Number of candidates scored concurrently")
	cmd.Flags().Int64Var(&generateSeed, "seed", projectconfig.DefaultSeed, "Random seed for reproducible output (negative for random)")
	cmd.Flags().StringSliceVar(&generateScorers, "scorer", nil, "Scorer to include (repeatable, default from config)")
	cmd.Flags().StringVar(&generateWordlist, "wordlist", "", "Newline-separated word list (default: BIP-39 English)")
	cmd.Flags().StringVar(&generateSeparator, "separator", projectconfig.DefaultSeparator, "Separator printed between words")
	cmd.Flags().BoolVar(&generateJSON, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&generateKeepFailed, "keep-failed", false, "Keep candidates that failed scoring in the statistics")
	cmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Show a zxcvbn strength estimate for each passphrase")
	cmd.Flags().BoolVarP(&generateInteractive, "interactive", "i", false, "Choose the number of words interactively")

	return cmd
}

// applyGenerateFlags overlays explicitly set flags onto cfg.
func applyGenerateFlags(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) {
	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.Generate.WordCount = generateWords
	}
	if flags.Changed("top") {
		cfg.Generate.Top = generateTop
	}
	if flags.Changed("trials") {
		cfg.Generate.Trials = generateTrials
	}
	if flags.Changed("workers") {
		cfg.Generate.Workers = generateWorkers
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = &generateSeed
	}
	if flags.Changed("separator") {
		cfg.Generate.Separator = &generateSeparator
	}
	if flags.Changed("keep-failed") {
		cfg.Generate.KeepFailed = &generateKeepFailed
	}
	if flags.Changed("wordlist") {
		cfg.Wordlist = generateWordlist
		cfg.Dir = ""
	}
}

func generateCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, cfg)

	if cfg.Generate.WordCount < 1 {
		return fmt.Errorf("--words: %w", generate.ErrInvalidWordCount)
	}
	if cfg.Generate.Top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", cfg.Generate.Top)
	}
	if cfg.Generate.Trials < 1 {
		return fmt.Errorf("--trials must be at least 1, got %d", cfg.Generate.Trials)
	}

	vocab, err := loadVocabulary(cfg.WordlistPath())
	if err != nil {
		return err
	}
	scorer, err := buildScorer(cfg, generateScorers)
	if err != nil {
		return err
	}

	engine, err := passphrase.NewEngine(vocab, scorer, passphrase.EngineOptions{
		Top: cfg.Generate.Top,
		Generator: generate.Options{
			Trials:     cfg.Generate.Trials,
			Workers:    cfg.Generate.Workers,
			Rand:       generate.SeededSource(*cfg.Generate.Seed),
			KeepFailed: *cfg.Generate.KeepFailed,
			Logger:     slog.Default(),
		},
	})
	if err != nil {
		return err
	}

	slog.Debug("Generate settings",
		"wordlist", vocab.Source(),
		"vocabularySize", vocab.Size(),
		"scorers", scorerNames(scorer),
		"trials", cfg.Generate.Trials,
		"top", cfg.Generate.Top)

	out := cmd.OutOrStdout()
	report := &generateReport{
		Source:    vocab.Source(),
		VocabSize: vocab.Size(),
		Trials:    cfg.Generate.Trials,
		Separator: *cfg.Generate.Separator,
		Verbose:   generateVerbose,
	}

	if generateInteractive {
		if generateJSON {
			return fmt.Errorf("--json cannot be combined with --interactive")
		}
		return runInteractive(cmd.Context(), cmd.InOrStdin(), out, engine, cfg.Generate.WordCount, report)
	}

	stop := spinner.StartOnTerminal(os.Stderr, printer.Sprintf("Scoring %d candidates", cfg.Generate.Trials))
	suggestion, err := engine.Suggest(cmd.Context(), cfg.Generate.WordCount)
	stop()
	if err != nil {
		return err
	}

	return report.write(out, suggestion, generateJSON)
}

// runInteractive lets the user try lengths one after another. Each pick
// replaces the previous request through a session coordinator.
func runInteractive(ctx context.Context, in io.Reader, out io.Writer, engine *passphrase.Engine, initial int, report *generateReport) error {
	coord := session.NewCoordinator(engine.Suggest, slog.Default())
	defer coord.Cancel()

	choices := wizard.Choices(engine.VocabularySize(), projectconfig.MinInteractiveWords, projectconfig.MaxInteractiveWords)
	words := initial
	for {
		n, err := wizard.PickWordCount(in, out, choices, words)
		if err != nil {
			return err
		}
		words = n

		suggestion, err := coord.Request(ctx, words)
		if err != nil {
			return err
		}
		if err := report.write(out, suggestion, false); err != nil {
			return err
		}

		again, err := wizard.Again(in, out)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// generateReport renders suggestions for the terminal or as JSON.
type generateReport struct {
	Source    string
	VocabSize int
	Trials    int
	Separator string
	Verbose   bool
}

type candidateOutput struct {
	Rank       int               `json:"rank"`
	Phrase     string            `json:"phrase"`
	Words      []string          `json:"words"`
	Score      float64           `json:"score"`
	Crosscheck *entropy.Estimate `json:"crosscheck,omitempty"`
}

type generateOutput struct {
	WordCount      int               `json:"word_count"`
	EntropyBits    int               `json:"entropy_bits"`
	Strength       entropy.Strength  `json:"strength"`
	Wordlist       string            `json:"wordlist"`
	VocabularySize int               `json:"vocabulary_size"`
	Trials         int               `json:"trials"`
	Failed         int               `json:"failed"`
	Candidates     []candidateOutput `json:"candidates"`
	Summary        metrics.Summary   `json:"summary"`
}

func (r *generateReport) build(s *passphrase.Suggestion) *generateOutput {
	out := &generateOutput{
		WordCount:      s.WordCount,
		EntropyBits:    s.Bits,
		Strength:       s.Strength,
		Wordlist:       r.Source,
		VocabularySize: r.VocabSize,
		Trials:         r.Trials,
		Failed:         s.Failed,
		Candidates:     make([]candidateOutput, 0, len(s.Top)),
		Summary:        s.Summary,
	}

	// Top is ascending; print the best first.
	for i := len(s.Top) - 1; i >= 0; i-- {
		c := s.Top[i]
		co := candidateOutput{
			Rank:   len(out.Candidates) + 1,
			Phrase: c.Phrase(r.Separator),
			Words:  c.Words,
			Score:  c.Score,
		}
		if r.Verbose {
			est := entropy.Crosscheck(co.Phrase)
			co.Crosscheck = &est
		}
		out.Candidates = append(out.Candidates, co)
	}
	return out
}

func (r *generateReport) write(w io.Writer, s *passphrase.Suggestion, asJSON bool) error {
	out := r.build(s)
	if asJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Fprintln(w, string(data)) //nolint:errcheck
		return nil
	}

	printer.Fprintf(w, "%d words from %s (%d words): %d bits, %s\n\n", //nolint:errcheck
		out.WordCount, out.Wordlist, out.VocabularySize, out.EntropyBits, out.Strength)

	header := []string{"#", "PASSPHRASE", "SCORE"}
	if r.Verbose {
		header = append(header, "ZXCVBN", "CRACK TIME")
	}
	rows := [][]string{header}
	for _, c := range out.Candidates {
		row := []string{fmt.Sprintf("%d", c.Rank), c.Phrase, fmt.Sprintf("%.3f", c.Score)}
		if c.Crosscheck != nil {
			row = append(row, fmt.Sprintf("%d/4", c.Crosscheck.Score), c.Crosscheck.CrackTime)
		}
		rows = append(rows, row)
	}
	printTable(w, rows)

	printer.Fprintf(w, "\nScored %d of %d candidates: mean %.3f, p90 %.3f, best %.3f\n", //nolint:errcheck
		out.Summary.Count, out.Trials, out.Summary.Mean, out.Summary.P90, out.Summary.Max)
	if out.Failed > 0 {
		printer.Fprintf(w, "%d candidates could not be scored\n", out.Failed) //nolint:errcheck
	}
	return nil
}
