package scoring

import (
	"errors"
	"fmt"
)

// ErrNoScorers is returned when a composite is built from an empty set.
var ErrNoScorers = errors.New("composite needs at least one scorer")

// Composite averages the scores of its constituents with equal weight.
// It stays within [0, 1] as long as every constituent does.
type Composite struct {
	scorers []Scorer
}

// NewComposite builds a [Composite] over scorers, in the given order.
func NewComposite(scorers ...Scorer) (*Composite, error) {
	if len(scorers) == 0 {
		return nil, ErrNoScorers
	}
	for i, s := range scorers {
		if s == nil {
			return nil, fmt.Errorf("scorer %d is nil", i)
		}
	}
	return &Composite{scorers: append([]Scorer(nil), scorers...)}, nil
}

// Build creates each scorer in specs and composes them.
func Build(specs []Spec) (*Composite, error) {
	scorers := make([]Scorer, 0, len(specs))
	for _, spec := range specs {
		s, err := Create(spec.Type, spec.Params)
		if err != nil {
			return nil, err
		}
		scorers = append(scorers, s)
	}
	return NewComposite(scorers...)
}

// Default returns the hand, finger and one-apart scorers composed together.
func Default() *Composite {
	specs := make([]Spec, len(DefaultTypes))
	for i, t := range DefaultTypes {
		specs[i] = Spec{Type: t}
	}
	c, err := Build(specs)
	if err != nil {
		panic(fmt.Sprintf("building default scorers: %v", err))
	}
	return c
}

func (c *Composite) Name() string { return string(TypeComposite) }
func (c *Composite) Type() Type   { return TypeComposite }

// Scorers returns the constituents in order.
func (c *Composite) Scorers() []Scorer {
	return append([]Scorer(nil), c.scorers...)
}

// Score returns the mean of the constituent scores. The first constituent
// error aborts scoring and is returned wrapped with that scorer's name.
func (c *Composite) Score(s string) (float64, error) {
	total := 0.0
	for _, scorer := range c.scorers {
		v, err := scorer.Score(s)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", scorer.Name(), err)
		}
		total += v
	}
	return total / float64(len(c.scorers)), nil
}

// Part is one constituent's contribution to a [Breakdown].
type Part struct {
	Name  string
	Score float64
	Err   error
}

// Breakdown holds every constituent's result for one input.
type Breakdown struct {
	Parts []Part

	// Score is the composite mean. It is only meaningful when Err is nil.
	Score float64
	Err   error
}

// Breakdown scores s with every constituent, recording failures per part
// instead of stopping at the first one.
func (c *Composite) Breakdown(s string) Breakdown {
	b := Breakdown{Parts: make([]Part, 0, len(c.scorers))}
	var errs []error
	total := 0.0

	for _, scorer := range c.scorers {
		v, err := scorer.Score(s)
		if err != nil {
			err = fmt.Errorf("%s: %w", scorer.Name(), err)
			errs = append(errs, err)
		}
		b.Parts = append(b.Parts, Part{Name: scorer.Name(), Score: v, Err: err})
		total += v
	}

	if len(errs) > 0 {
		b.Err = errors.Join(errs...)
		return b
	}
	b.Score = total / float64(len(c.scorers))
	return b
}
