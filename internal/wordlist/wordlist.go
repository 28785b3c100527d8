// Package wordlist loads the vocabulary passphrase words are drawn from.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Vocabulary is an ordered, read-only list of words.
type Vocabulary struct {
	words  []string
	source string
}

// ErrEmpty is returned when a word source yields no words.
var ErrEmpty = errors.New("word list is empty")

// Default returns the BIP-39 English list, 2048 short lower-case words.
func Default() *Vocabulary {
	return &Vocabulary{words: wordlists.English, source: "bip39-english"}
}

// New builds a Vocabulary from words. Words are validated with [Validate].
func New(source string, words []string) (*Vocabulary, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	for i, w := range words {
		if err := Validate(w); err != nil {
			return nil, fmt.Errorf("%s: word %d: %w", source, i+1, err)
		}
	}
	return &Vocabulary{words: append([]string(nil), words...), source: source}, nil
}

// Load reads a newline-separated word list from path.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return Read(path, f)
}

// Read parses one word per line from r. Surrounding whitespace is trimmed,
// and blank lines and lines starting with '#' are skipped.
func Read(source string, r io.Reader) (*Vocabulary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if err := Validate(w); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	return &Vocabulary{words: words, source: source}, nil
}

// Validate checks that w is a non-empty, lower-case alphabetic word.
func Validate(w string) error {
	if w == "" {
		return errors.New("empty word")
	}
	for _, r := range w {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return fmt.Errorf("word %q must be lower-case letters only", w)
		}
	}
	return nil
}

// Words returns the underlying list. Callers must not modify it.
func (v *Vocabulary) Words() []string {
	return v.words
}

// Size returns the number of words, which feeds entropy estimates.
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Source describes where the words came from.
func (v *Vocabulary) Source() string {
	return v.source
}
