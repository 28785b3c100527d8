// Package ranking orders scored candidates and selects the best of them.
package ranking

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spboyer/passgen/internal/metrics"
	"github.com/spboyer/passgen/internal/models"
)

// DefaultTop is how many candidates are presented by default.
const DefaultTop = 5

var ErrInvalidK = errors.New("k must not be negative")

// Sort returns the candidates that scored successfully, ordered by
// ascending score. The input is not modified. Tie order is unspecified.
func Sort(candidates []models.Candidate) []models.Candidate {
	sorted := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Failed() {
			sorted = append(sorted, c)
		}
	}
	slices.SortStableFunc(sorted, func(a, b models.Candidate) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// Top returns the k highest-scoring candidates in ascending order, so the
// best candidate is last. Fewer than k are returned when the population is
// smaller.
func Top(candidates []models.Candidate, k int) ([]models.Candidate, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	sorted := Sort(candidates)
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[len(sorted)-k:], nil
}

// Best returns the same selection as [Top], best candidate first.
func Best(candidates []models.Candidate, k int) ([]models.Candidate, error) {
	top, err := Top(candidates, k)
	if err != nil {
		return nil, err
	}
	slices.Reverse(top)
	return top, nil
}

// Summarize describes the score distribution of the successfully scored
// candidates.
func Summarize(candidates []models.Candidate) metrics.Summary {
	scores := make([]float64, 0, len(candidates))
	for _, c := range candidates {
		if !c.Failed() {
			scores = append(scores, c.Score)
		}
	}
	return metrics.Summarize(scores)
}
