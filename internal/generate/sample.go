package generate

import "math/rand"

// sampler draws words without replacement. It keeps a permutation of the
// vocabulary indexes between draws; a partial Fisher-Yates pass over any
// arrangement still yields a uniformly random prefix.
type sampler struct {
	words []string
	perm  []int
}

func newSampler(words []string) *sampler {
	perm := make([]int, len(words))
	for i := range perm {
		perm[i] = i
	}
	return &sampler{words: words, perm: perm}
}

// draw returns n distinct words in random order, or the whole vocabulary
// shuffled when n exceeds its size.
func (s *sampler) draw(rng *rand.Rand, n int) []string {
	if n > len(s.perm) {
		n = len(s.perm)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(s.perm)-i)
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
		out[i] = s.words[s.perm[i]]
	}
	return out
}

// Sample returns n distinct words from words in random order, capped at
// len(words).
func Sample(rng *rand.Rand, words []string, n int) []string {
	if n <= 0 || len(words) == 0 {
		return nil
	}
	return newSampler(words).draw(rng, n)
}
