package scoring

// SimilarCharsOneApart penalizes "seesaw" patterns where a character repeats
// with exactly one character in between, as in "aba".
type SimilarCharsOneApart struct{}

func (SimilarCharsOneApart) Name() string { return string(TypeSimilarOneApart) }
func (SimilarCharsOneApart) Type() Type   { return TypeSimilarOneApart }

func (SimilarCharsOneApart) Score(s string) (float64, error) {
	chars, err := letters(s)
	if err != nil {
		return 0, err
	}
	if len(chars) <= 2 {
		return 1, nil
	}

	// Only positions with a two-back neighbor can be tested.
	tests := len(chars) - 2
	similar := 0
	for i := 2; i < len(chars); i++ {
		if chars[i-2] == chars[i] {
			similar++
		}
	}
	return 1 - float64(similar)/float64(tests), nil
}

// DefaultSingleDoubleScore is the score [DoubleLetters] gives a string with
// exactly one doubled letter.
const DefaultSingleDoubleScore = 0.01

// DoubleLetters penalizes adjacent repeated characters. No doubles scores 1,
// a single double scores SingleDoubleScore and more than one scores 0.
type DoubleLetters struct {
	SingleDoubleScore float64
}

// NewDoubleLetters returns a [DoubleLetters] with the default penalty.
func NewDoubleLetters() DoubleLetters {
	return DoubleLetters{SingleDoubleScore: DefaultSingleDoubleScore}
}

func (DoubleLetters) Name() string { return string(TypeDoubleLetters) }
func (DoubleLetters) Type() Type   { return TypeDoubleLetters }

func (d DoubleLetters) Score(s string) (float64, error) {
	chars, err := letters(s)
	if err != nil {
		return 0, err
	}
	doubles := 0
	for i := 1; i < len(chars); i++ {
		if chars[i-1] == chars[i] {
			doubles++
		}
	}

	switch {
	case doubles == 0:
		return 1, nil
	case doubles == 1:
		return d.SingleDoubleScore, nil
	default:
		return 0, nil
	}
}
