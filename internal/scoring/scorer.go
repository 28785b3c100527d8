// Package scoring rates how comfortable a string is to type. Every scorer
// maps its input to a value in [0, 1], where higher is easier.
package scoring

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/text/unicode/norm"
)

// Type names a scorer implementation.
type Type string

const (
	TypeSwitchHand      Type = "switch_hand"
	TypeSwitchFinger    Type = "switch_finger"
	TypeSimilarOneApart Type = "similar_one_apart"
	TypePinkyDisfavor   Type = "pinky_disfavor"
	TypeDoubleLetters   Type = "double_letters"

	TypeComposite Type = "composite"
)

// Types lists every scorer that can be created with [Create], in display order.
var Types = []Type{
	TypeSwitchHand,
	TypeSwitchFinger,
	TypeSimilarOneApart,
	TypePinkyDisfavor,
	TypeDoubleLetters,
}

// DefaultTypes are the scorers composed by [Default].
var DefaultTypes = []Type{
	TypeSwitchHand,
	TypeSwitchFinger,
	TypeSimilarOneApart,
}

func (t Type) String() string {
	return string(t)
}

// ParseType converts a flag or config value to a Type.
func ParseType(s string) (Type, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, t := range Types {
		if string(t) == normalized {
			return t, nil
		}
	}

	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return "", fmt.Errorf("invalid scorer %q: must be one of %s", s, strings.Join(names, ", "))
}

//go:generate go tool mockgen -source=scorer.go -destination=scoringmock/mock_scorer.go -package=scoringmock

// Scorer rates a string. Implementations are stateless and safe for
// concurrent use.
type Scorer interface {
	// Name returns the scorer name used in results and error messages.
	Name() string

	// Type returns the scorer implementation.
	Type() Type

	// Score returns a value in [0, 1]. Empty and very short inputs return the
	// scorer's neutral value rather than an error.
	Score(s string) (float64, error)
}

// Spec describes a scorer to build, as read from configuration.
type Spec struct {
	Type   Type
	Params map[string]any
}

// Create builds a scorer of the given type. params holds type-specific
// settings; unknown keys are rejected.
func Create(scorerType Type, params map[string]any) (Scorer, error) {
	switch scorerType {
	case TypeSwitchHand, TypeSwitchFinger, TypeSimilarOneApart, TypePinkyDisfavor:
		// These take no settings.
		if err := decodeParams(scorerType, params, &struct{}{}); err != nil {
			return nil, err
		}
		return parameterless[scorerType], nil
	case TypeDoubleLetters:
		var v struct {
			SingleDoubleScore *float64 `mapstructure:"single_double_score"`
		}
		if err := decodeParams(scorerType, params, &v); err != nil {
			return nil, err
		}
		s := NewDoubleLetters()
		if v.SingleDoubleScore != nil {
			if *v.SingleDoubleScore < 0 || *v.SingleDoubleScore > 1 {
				return nil, fmt.Errorf("%s: single_double_score must be within [0, 1], got %v", scorerType, *v.SingleDoubleScore)
			}
			s.SingleDoubleScore = *v.SingleDoubleScore
		}
		return s, nil
	case TypeComposite:
		return nil, fmt.Errorf("'%s' cannot be created directly, use NewComposite", scorerType)
	default:
		return nil, fmt.Errorf("'%s' is not a valid scorer type", scorerType)
	}
}

var parameterless = map[Type]Scorer{
	TypeSwitchHand:      SwitchHandFavor{},
	TypeSwitchFinger:    SwitchFingerFavor{},
	TypeSimilarOneApart: SimilarCharsOneApart{},
	TypePinkyDisfavor:   PinkyDisfavor{},
}

func decodeParams(scorerType Type, params map[string]any, out any) error {
	if len(params) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(params); err != nil {
		return fmt.Errorf("%s params: %w", scorerType, err)
	}
	return nil
}

// ErrInvalidUTF8 is returned by every scorer for input that is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// letters splits s into runes after composing it, so an accented letter
// written as base + combining mark counts as one character.
func letters(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	return []rune(norm.NFC.String(s)), nil
}
