// Package session runs passphrase generations on behalf of an interactive
// caller, where each new request replaces the one before it.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/spboyer/passgen/internal/passphrase"
)

// ErrSuperseded is returned to a caller whose request was replaced by a
// newer one, or abandoned with [Coordinator.Cancel], before it finished.
var ErrSuperseded = errors.New("request superseded")

// SuggestFunc produces a suggestion for wordCount words. It must return
// promptly once ctx is cancelled.
type SuggestFunc func(ctx context.Context, wordCount int) (*passphrase.Suggestion, error)

// Coordinator makes sure only the most recent request is ever published.
// Starting a request cancels whatever was in flight; a cancelled run never
// replaces the published suggestion, even if it finishes anyway.
type Coordinator struct {
	suggest SuggestFunc
	logger  *slog.Logger

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	latest  *passphrase.Suggestion
	running bool
}

// NewCoordinator creates a Coordinator around suggest, typically
// [passphrase.Engine.Suggest].
func NewCoordinator(suggest SuggestFunc, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{suggest: suggest, logger: logger}
}

// Request starts a generation for wordCount words, cancelling any request
// still in flight, and blocks until it finishes. The result is published
// only if no newer request started in the meantime; otherwise
// [ErrSuperseded] is returned.
func (c *Coordinator) Request(ctx context.Context, wordCount int) (*passphrase.Suggestion, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	c.seq++
	id := c.seq
	if c.cancel != nil {
		c.logger.Debug("Superseding in-flight request", "request", id-1)
		c.cancel()
	}
	c.cancel = cancel
	c.running = true
	c.mu.Unlock()

	suggestion, err := c.suggest(runCtx, wordCount)

	c.mu.Lock()
	defer c.mu.Unlock()

	if id != c.seq {
		return nil, ErrSuperseded
	}
	c.cancel = nil
	c.running = false

	if err != nil {
		return nil, err
	}
	c.latest = suggestion
	return suggestion, nil
}

// Cancel abandons the in-flight request, if any. Its caller receives
// [ErrSuperseded] and nothing is published.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil {
		return
	}
	c.seq++
	c.cancel()
	c.cancel = nil
	c.running = false
}

// Clear cancels any in-flight request and forgets the published suggestion,
// as when the requested word count changes.
func (c *Coordinator) Clear() {
	c.Cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = nil
}

// Latest returns the most recently published suggestion.
func (c *Coordinator) Latest() (*passphrase.Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.latest != nil
}

// Running reports whether a request is in flight.
func (c *Coordinator) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
