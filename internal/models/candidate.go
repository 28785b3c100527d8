package models

import (
	"strings"
	"time"
)

// Candidate is one generated passphrase with its composite score.
type Candidate struct {
	// Words are the sampled words in the order they were drawn.
	Words []string `json:"words"`
	Score float64  `json:"score"`

	// Err is set when the candidate could not be scored. Score is zero then.
	Err error `json:"-"`
}

// Text returns the words joined without a separator, which is what scorers see.
func (c Candidate) Text() string {
	return strings.Join(c.Words, "")
}

// Phrase returns the words joined by sep, for display.
func (c Candidate) Phrase(sep string) string {
	return strings.Join(c.Words, sep)
}

// Failed reports whether scoring the candidate failed.
func (c Candidate) Failed() bool {
	return c.Err != nil
}

// GenerationResult is the scored population from one generation run,
// in generation order.
type GenerationResult struct {
	WordCount      int           `json:"word_count"`
	VocabularySize int           `json:"vocabulary_size"`
	Trials         int           `json:"trials"`
	Candidates     []Candidate   `json:"candidates"`
	Failed         int           `json:"failed"`
	Duration       time.Duration `json:"duration_ns"`
}

// Scores returns the scores of every candidate that scored successfully.
func (r *GenerationResult) Scores() []float64 {
	scores := make([]float64, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if !c.Failed() {
			scores = append(scores, c.Score)
		}
	}
	return scores
}
