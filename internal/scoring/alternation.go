package scoring

import (
	"github.com/spboyer/passgen/internal/keyboard"
)

// SwitchHandFavor rewards strings whose consecutive characters alternate
// between hands. The score is the fraction of adjacent pairs that switch.
type SwitchHandFavor struct{}

func (SwitchHandFavor) Name() string { return string(TypeSwitchHand) }
func (SwitchHandFavor) Type() Type   { return TypeSwitchHand }

func (SwitchHandFavor) Score(s string) (float64, error) {
	chars, err := letters(s)
	if err != nil {
		return 0, err
	}
	if len(chars) <= 1 {
		return 1, nil
	}

	switches := 0
	current := keyboard.HandFor(chars[0])
	for _, c := range chars[1:] {
		next := keyboard.HandFor(c)
		if next != current {
			switches++
			current = next
		}
	}
	return float64(switches) / float64(len(chars)-1), nil
}

// SwitchFingerFavor rewards strings whose consecutive characters are typed
// by different finger groups. It fails on characters that have no finger
// assignment.
type SwitchFingerFavor struct{}

func (SwitchFingerFavor) Name() string { return string(TypeSwitchFinger) }
func (SwitchFingerFavor) Type() Type   { return TypeSwitchFinger }

func (SwitchFingerFavor) Score(s string) (float64, error) {
	chars, err := letters(s)
	if err != nil {
		return 0, err
	}
	if len(chars) <= 1 {
		return 1, nil
	}

	current, err := keyboard.FingerFor(chars[0])
	if err != nil {
		return 0, err
	}
	switches := 0
	for _, c := range chars[1:] {
		next, err := keyboard.FingerFor(c)
		if err != nil {
			return 0, err
		}
		if next != current {
			switches++
			current = next
		}
	}
	return float64(switches) / float64(len(chars)-1), nil
}
