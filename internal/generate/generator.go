// Package generate draws random word subsets from a vocabulary and scores
// each one, producing the candidate population that ranking picks from.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spboyer/passgen/internal/models"
	"github.com/spboyer/passgen/internal/scoring"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTrials is the number of candidates drawn per run.
	DefaultTrials = 500

	// DefaultWorkers bounds how many candidates are scored at once.
	DefaultWorkers = 4
)

var (
	// ErrInvalidWordCount is returned when fewer than one word is requested.
	ErrInvalidWordCount = errors.New("word count must be at least 1")

	// ErrEmptyVocabulary is returned when there are no words to draw from.
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
)

// RandSource returns the random generator for a single run. It is called
// once per [Generator.Generate] so runs never share generator state.
type RandSource func() *rand.Rand

// SeededSource returns a RandSource that replays the same draws on every
// run. A negative seed uses a non-deterministic source instead.
func SeededSource(seed int64) RandSource {
	if seed < 0 {
		return func() *rand.Rand {
			return rand.New(rand.NewSource(rand.Int63()))
		}
	}
	return func() *rand.Rand {
		return rand.New(rand.NewSource(seed))
	}
}

// Options configures a [Generator]. Zero values fall back to defaults.
type Options struct {
	Trials  int
	Workers int
	Rand    RandSource

	// KeepFailed keeps candidates whose scoring failed in the result,
	// flagged through Candidate.Err. They are dropped otherwise.
	KeepFailed bool

	Logger *slog.Logger
}

// Generator produces scored candidates. It holds no per-run state and is
// safe for concurrent use.
type Generator struct {
	scorer     scoring.Scorer
	trials     int
	workers    int
	newRand    RandSource
	keepFailed bool
	logger     *slog.Logger
}

// New creates a Generator that scores candidates with scorer.
func New(scorer scoring.Scorer, opts Options) *Generator {
	g := &Generator{
		scorer:     scorer,
		trials:     opts.Trials,
		workers:    opts.Workers,
		newRand:    opts.Rand,
		keepFailed: opts.KeepFailed,
		logger:     opts.Logger,
	}
	if g.trials <= 0 {
		g.trials = DefaultTrials
	}
	if g.workers <= 0 {
		g.workers = DefaultWorkers
	}
	if g.newRand == nil {
		g.newRand = SeededSource(-1)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Trials returns the number of candidates drawn per run.
func (g *Generator) Trials() int { return g.trials }

// Generate draws the configured number of candidates of wordCount words
// each and scores them. Candidates are returned unsorted, in draw order.
//
// When wordCount exceeds the vocabulary size every candidate holds the whole
// vocabulary in shuffled order. If ctx is cancelled before the run finishes,
// Generate returns ctx's error and no candidates.
func (g *Generator) Generate(ctx context.Context, wordCount int, words []string) (*models.GenerationResult, error) {
	if wordCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordCount, wordCount)
	}
	if len(words) == 0 {
		return nil, ErrEmptyVocabulary
	}

	start := time.Now()
	g.logger.Debug("Generating candidates",
		"trials", g.trials,
		"workers", g.workers,
		"wordCount", wordCount,
		"vocabularySize", len(words),
		"scorer", g.scorer.Name())

	// Sampling stays on one goroutine so a seeded run reproduces exactly,
	// however the scoring below is scheduled.
	rng := g.newRand()
	s := newSampler(words)
	candidates := make([]models.Candidate, g.trials)
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			g.logger.Debug("Generation cancelled while sampling", "trial", i)
			return nil, err
		}
		candidates[i].Words = s.draw(rng, wordCount)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := range candidates {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			c := &candidates[i]
			c.Score, c.Err = g.scorer.Score(c.Text())
			if c.Err != nil {
				c.Score = 0
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		g.logger.Debug("Generation cancelled while scoring", "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		g.logger.Debug("Generation cancelled", "error", err)
		return nil, err
	}

	result := &models.GenerationResult{
		WordCount:      wordCount,
		VocabularySize: len(words),
		Trials:         g.trials,
		Candidates:     make([]models.Candidate, 0, len(candidates)),
	}
	for i, c := range candidates {
		if c.Failed() {
			result.Failed++
			// The words are a secret, so only the trial index is logged.
			g.logger.Warn("Candidate scoring failed", "trial", i, "error", c.Err)
			if !g.keepFailed {
				continue
			}
		}
		result.Candidates = append(result.Candidates, c)
	}
	result.Duration = time.Since(start)

	return result, nil
}
