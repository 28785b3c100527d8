package scoring

import (
	"github.com/spboyer/passgen/internal/keyboard"
)

// PinkyDisfavor penalizes the share of characters typed with either pinky.
// Characters without a finger assignment count as non-pinky.
type PinkyDisfavor struct{}

func (PinkyDisfavor) Name() string { return string(TypePinkyDisfavor) }
func (PinkyDisfavor) Type() Type   { return TypePinkyDisfavor }

func (PinkyDisfavor) Score(s string) (float64, error) {
	chars, err := letters(s)
	if err != nil {
		return 0, err
	}
	if len(chars) == 0 {
		return 1, nil
	}

	pinky := 0
	for _, c := range chars {
		if f, err := keyboard.FingerFor(c); err == nil && f.IsPinky() {
			pinky++
		}
	}
	return 1 - float64(pinky)/float64(len(chars)), nil
}
