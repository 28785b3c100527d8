// Package passphrase ties the vocabulary, scorers, generator and ranking
// into the operation callers actually want: "give me the best few
// passphrases of N words".
package passphrase

import (
	"context"
	"errors"
	"fmt"

	"github.com/spboyer/passgen/internal/entropy"
	"github.com/spboyer/passgen/internal/generate"
	"github.com/spboyer/passgen/internal/metrics"
	"github.com/spboyer/passgen/internal/models"
	"github.com/spboyer/passgen/internal/ranking"
	"github.com/spboyer/passgen/internal/scoring"
	"github.com/spboyer/passgen/internal/wordlist"
)

// ErrNoCandidates is returned when every candidate in a run failed scoring.
var ErrNoCandidates = errors.New("no candidate could be scored")

// EngineOptions configures an [Engine].
type EngineOptions struct {
	// Top is how many candidates [Engine.Suggest] returns. Defaults to
	// [ranking.DefaultTop].
	Top int

	Generator generate.Options
}

// Engine generates and ranks passphrases from a fixed vocabulary.
type Engine struct {
	vocab  *wordlist.Vocabulary
	scorer scoring.Scorer
	gen    *generate.Generator
	top    int
}

// NewEngine creates an Engine. A nil scorer uses [scoring.Default].
func NewEngine(vocab *wordlist.Vocabulary, scorer scoring.Scorer, opts EngineOptions) (*Engine, error) {
	if vocab == nil || vocab.Size() == 0 {
		return nil, generate.ErrEmptyVocabulary
	}
	if scorer == nil {
		scorer = scoring.Default()
	}
	if opts.Top < 0 {
		return nil, fmt.Errorf("top: %w", ranking.ErrInvalidK)
	}
	if opts.Top == 0 {
		opts.Top = ranking.DefaultTop
	}

	return &Engine{
		vocab:  vocab,
		scorer: scorer,
		gen:    generate.New(scorer, opts.Generator),
		top:    opts.Top,
	}, nil
}

// VocabularySize returns the number of words candidates are drawn from.
func (e *Engine) VocabularySize() int {
	return e.vocab.Size()
}

// Vocabulary returns the engine's word list.
func (e *Engine) Vocabulary() *wordlist.Vocabulary {
	return e.vocab
}

// Scorer returns the scorer candidates are rated with.
func (e *Engine) Scorer() scoring.Scorer {
	return e.scorer
}

// EntropyBits returns the scheme strength for wordCount words from this
// engine's vocabulary.
func (e *Engine) EntropyBits(wordCount int) int {
	return entropy.Bits(wordCount, e.vocab.Size())
}

// Generate runs one generation and returns the whole unsorted population.
func (e *Engine) Generate(ctx context.Context, wordCount int) (*models.GenerationResult, error) {
	return e.gen.Generate(ctx, wordCount, e.vocab.Words())
}

// Suggestion is the ranked outcome of one run.
type Suggestion struct {
	WordCount int                `json:"word_count"`
	Bits      int                `json:"entropy_bits"`
	Strength  entropy.Strength   `json:"strength"`
	Top       []models.Candidate `json:"top"`
	Summary   metrics.Summary    `json:"summary"`
	Failed    int                `json:"failed"`
}

// Suggest generates candidates and keeps the best ones, in ascending score
// order with the best last.
func (e *Engine) Suggest(ctx context.Context, wordCount int) (*Suggestion, error) {
	result, err := e.Generate(ctx, wordCount)
	if err != nil {
		return nil, err
	}

	top, err := ranking.Top(result.Candidates, e.top)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("%w: %d of %d trials failed", ErrNoCandidates, result.Failed, result.Trials)
	}

	bits := e.EntropyBits(wordCount)
	return &Suggestion{
		WordCount: wordCount,
		Bits:      bits,
		Strength:  entropy.Classify(bits),
		Top:       top,
		Summary:   ranking.Summarize(result.Candidates),
		Failed:    result.Failed,
	}, nil
}
