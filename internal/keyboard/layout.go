// Package keyboard models which hand and finger types each letter on a
// standard QWERTY layout.
package keyboard

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Hand is the hand that types a key.
type Hand int

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "left"
	}
	return "right"
}

// Finger identifies one of the eight touch-typing finger groups.
// 0-3: left hand (pinky to index)
// 4-7: right hand (index to pinky)
type Finger int

const (
	LeftPinky Finger = iota
	LeftRing
	LeftMiddle
	LeftIndex
	RightIndex
	RightMiddle
	RightRing
	RightPinky
)

var fingerNames = [...]string{
	"left-pinky", "left-ring", "left-middle", "left-index",
	"right-index", "right-middle", "right-ring", "right-pinky",
}

func (f Finger) String() string {
	if f < LeftPinky || f > RightPinky {
		return fmt.Sprintf("finger(%d)", int(f))
	}
	return fingerNames[f]
}

// Hand returns the hand the finger belongs to.
func (f Finger) Hand() Hand {
	if f <= LeftIndex {
		return Left
	}
	return Right
}

// IsPinky reports whether f is either pinky.
func (f Finger) IsPinky() bool {
	return f == LeftPinky || f == RightPinky
}

// Groups lists the letters each finger is responsible for.
var Groups = map[Finger]string{
	LeftPinky:   "qaz",
	LeftRing:    "wsx",
	LeftMiddle:  "edc",
	LeftIndex:   "rfvtgb",
	RightIndex:  "yuhjnm",
	RightMiddle: "ik",
	RightRing:   "ol",
	RightPinky:  "p",
}

var fingerByLetter = func() map[rune]Finger {
	m := make(map[rune]Finger, 26)
	for f, letters := range Groups {
		for _, r := range letters {
			m[r] = f
		}
	}
	return m
}()

// ErrUnclassifiable is returned when a character has no finger assignment.
var ErrUnclassifiable = errors.New("character has no finger assignment")

// UnclassifiableError reports the character that could not be classified.
type UnclassifiableError struct {
	Rune rune
}

func (e *UnclassifiableError) Error() string {
	return fmt.Sprintf("%q: %s", e.Rune, ErrUnclassifiable)
}

func (e *UnclassifiableError) Unwrap() error {
	return ErrUnclassifiable
}

// Base lower-cases r and strips any diacritics, so 'É' becomes 'e'.
// Characters without a Latin base are returned lower-cased but otherwise
// unchanged.
func Base(r rune) rune {
	r = unicode.ToLower(r)
	if r < utf8.RuneSelf {
		return r
	}

	// The chain is stateful, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, string(r))
	if err != nil || s == "" {
		return r
	}
	base, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(base)
}

// FingerFor returns the finger group that types r.
// The lookup ignores case and diacritics. Characters outside the modeled
// letters return an *UnclassifiableError.
func FingerFor(r rune) (Finger, error) {
	if f, ok := fingerByLetter[Base(r)]; ok {
		return f, nil
	}
	return 0, &UnclassifiableError{Rune: r}
}

// HandFor returns the hand that types r. Characters outside the modeled
// letters are assigned to the right hand.
func HandFor(r rune) Hand {
	if f, ok := fingerByLetter[Base(r)]; ok {
		return f.Hand()
	}
	return Right
}
