// Package entropy estimates how strong a word-based passphrase scheme is.
package entropy

import (
	"fmt"
	"math"
	"strings"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Bits returns floor(log2(vocabularySize) * wordCount): the strength of
// drawing wordCount words uniformly from a list of vocabularySize words,
// independent of which words came out. A non-positive size yields 0.
func Bits(wordCount, vocabularySize int) int {
	if vocabularySize <= 0 || wordCount <= 0 {
		return 0
	}
	return int(math.Floor(math.Log2(float64(vocabularySize)) * float64(wordCount)))
}

// Strength is a coarse band for an entropy value.
type Strength string

const (
	StrengthInvalid     Strength = "invalid"
	StrengthVeryWeak    Strength = "very weak"
	StrengthWeak        Strength = "weak"
	StrengthModerate    Strength = "moderate"
	StrengthStrong      Strength = "strong"
	StrengthVeryStrong  Strength = "very strong"
	StrengthExceptional Strength = "exceptional"
)

var strengthRank = map[Strength]int{
	StrengthInvalid:     -1,
	StrengthVeryWeak:    0,
	StrengthWeak:        1,
	StrengthModerate:    2,
	StrengthStrong:      3,
	StrengthVeryStrong:  4,
	StrengthExceptional: 5,
}

func (s Strength) String() string {
	return string(s)
}

// AtLeast returns true if s is at or above the target band.
func (s Strength) AtLeast(target Strength) bool {
	return strengthRank[s] >= strengthRank[target]
}

// Classify maps bits to a strength band. Negative values are invalid.
func Classify(bits int) Strength {
	switch {
	case bits < 0:
		return StrengthInvalid
	case bits < 28:
		return StrengthVeryWeak
	case bits < 40:
		return StrengthWeak
	case bits < 50:
		return StrengthModerate
	case bits < 70:
		return StrengthStrong
	case bits < 100:
		return StrengthVeryStrong
	default:
		return StrengthExceptional
	}
}

// ParseStrength converts a flag value such as "strong" or "very-strong"
// to a Strength.
func ParseStrength(s string) (Strength, error) {
	normalized := Strength(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", " "))
	if _, ok := strengthRank[normalized]; ok && normalized != StrengthInvalid {
		return normalized, nil
	}
	return StrengthInvalid, fmt.Errorf("invalid strength %q: must be very-weak, weak, moderate, strong, very-strong, or exceptional", s)
}

// Estimate is a pattern-based strength estimate for one concrete passphrase.
// Unlike [Bits] it looks at the actual characters, so dictionary words are
// recognized and rated accordingly.
type Estimate struct {
	// Score ranges from 0 (guessable) to 4 (very unguessable).
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// Crosscheck runs the zxcvbn estimator over passphrase. userInputs are extra
// words, like a user name, that an attacker would try first.
func Crosscheck(passphrase string, userInputs ...string) Estimate {
	m := zxcvbn.PasswordStrength(passphrase, userInputs)
	return Estimate{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
	}
}
