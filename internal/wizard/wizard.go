// Package wizard holds the interactive prompts of `passgen generate -i`.
package wizard

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spboyer/passgen/internal/entropy"
	"golang.org/x/term"
)

// Choice is one selectable passphrase length.
type Choice struct {
	Words    int
	Bits     int
	Strength entropy.Strength
}

// Label is the text shown for c in the picker.
func (c Choice) Label() string {
	unit := "words"
	if c.Words == 1 {
		unit = "word"
	}
	return fmt.Sprintf("%d %s (%d bits, %s)", c.Words, unit, c.Bits, c.Strength)
}

// Choices lists every length from minWords to maxWords for a vocabulary of
// vocabSize words. An inverted range yields nil.
func Choices(vocabSize, minWords, maxWords int) []Choice {
	if minWords < 1 {
		minWords = 1
	}
	if maxWords < minWords {
		return nil
	}
	out := make([]Choice, 0, maxWords-minWords+1)
	for n := minWords; n <= maxWords; n++ {
		bits := entropy.Bits(n, vocabSize)
		out = append(out, Choice{Words: n, Bits: bits, Strength: entropy.Classify(bits)})
	}
	return out
}

// PickWordCount asks for a passphrase length among choices. initial is
// preselected when it is one of them.
func PickWordCount(in io.Reader, out io.Writer, choices []Choice, initial int) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("no word counts to choose from")
	}

	selected := choices[0].Words
	options := make([]huh.Option[int], len(choices))
	for i, c := range choices {
		options[i] = huh.NewOption(c.Label(), c.Words)
		if c.Words == initial {
			selected = initial
		}
	}

	form := newForm(in, out, huh.NewGroup(
		huh.NewSelect[int]().
			Title("How many words?").
			Description("Longer passphrases are stronger but slower to type").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("word count prompt failed: %w", err)
	}
	return selected, nil
}

// Again asks whether to pick another length.
func Again(in io.Reader, out io.Writer) (bool, error) {
	again := false
	form := newForm(in, out, huh.NewGroup(
		huh.NewConfirm().
			Title("Try another length?").
			Affirmative("Yes").
			Negative("Done").
			Value(&again),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	return again, nil
}

func newForm(in io.Reader, out io.Writer, groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}
	return form
}
