package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spboyer/passgen/internal/entropy"
	"github.com/spboyer/passgen/internal/passphrase"
	"github.com/spboyer/passgen/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// runCLI executes the root command with args in an isolated config
// directory and returns stdout.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	prev := configDir
	configDir = dir
	t.Cleanup(func() { configDir = prev })

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func decodeGenerate(t *testing.T, out string) generateOutput {
	t.Helper()
	var got generateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	return got
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func TestGenerateCommand_JSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "generate", "--seed", "3", "--trials", "200", "--json")
	require.NoError(t, err)

	got := decodeGenerate(t, out)
	assert.Equal(t, 4, got.WordCount)
	assert.Equal(t, 44, got.EntropyBits)
	assert.Equal(t, entropy.StrengthModerate, got.Strength)
	assert.Equal(t, "bip39-english", got.Wordlist)
	assert.Equal(t, 2048, got.VocabularySize)
	assert.Equal(t, 200, got.Trials)
	assert.Equal(t, 0, got.Failed)
	assert.Equal(t, 200, got.Summary.Count)
	require.Len(t, got.Candidates, 5)

	for i, c := range got.Candidates {
		assert.Equal(t, i+1, c.Rank)
		assert.Len(t, c.Words, 4)
		assert.Equal(t, strings.Join(c.Words, " "), c.Phrase)
		assert.Nil(t, c.Crosscheck)
		for _, w := range c.Words {
			assert.Contains(t, wordlists.English, w)
		}
		if i > 0 {
			assert.LessOrEqual(t, c.Score, got.Candidates[i-1].Score, "best first")
		}
	}
	assert.Equal(t, got.Summary.Max, got.Candidates[0].Score)
}

func TestGenerateCommand_SeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	first, err := runCLI(t, dir, "generate", "--seed", "11", "--trials", "50", "--json")
	require.NoError(t, err)
	second, err := runCLI(t, dir, "generate", "--seed", "11", "--trials", "50", "--json", "--workers", "1")
	require.NoError(t, err)

	assert.Equal(t, decodeGenerate(t, first).Candidates, decodeGenerate(t, second).Candidates)
}

func TestGenerateCommand_Table(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "generate", "--seed", "1", "--trials", "20", "--top", "3", "--words", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "3 words from bip39-english (2,048 words): 33 bits, weak")
	assert.Contains(t, out, "PASSPHRASE")
	assert.Contains(t, out, "Scored 20 of 20 candidates")
	assert.NotContains(t, out, "ZXCVBN")

	var ranks []int
	for _, l := range strings.Split(out, "\n") {
		fields := strings.Fields(l)
		if len(fields) != 5 {
			continue
		}
		rank, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		_, err = strconv.ParseFloat(fields[4], 64)
		require.NoError(t, err, l)
		ranks = append(ranks, rank)
	}
	assert.Equal(t, []int{1, 2, 3}, ranks)
}

func TestGenerateCommand_Verbose(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "generate", "--seed", "2", "--trials", "10", "--top", "2", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "ZXCVBN")
	assert.Contains(t, out, "CRACK TIME")
	assert.Contains(t, out, "/4")

	out, err = runCLI(t, t.TempDir(), "generate", "--seed", "2", "--trials", "10", "--top", "2", "-v", "--json")
	require.NoError(t, err)
	for _, c := range decodeGenerate(t, out).Candidates {
		require.NotNil(t, c.Crosscheck)
		assert.GreaterOrEqual(t, c.Crosscheck.Score, 0)
		assert.LessOrEqual(t, c.Crosscheck.Score, 4)
	}
}

func TestGenerateCommand_ConfigAndFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".passgen.yaml", `
generate:
  word_count: 5
  trials: 30
  top: 2
  seed: 9
  separator: "-"
scorers:
  - pinky_disfavor
`)

	out, err := runCLI(t, dir, "generate", "--json")
	require.NoError(t, err)
	got := decodeGenerate(t, out)
	assert.Equal(t, 5, got.WordCount)
	assert.Equal(t, 30, got.Trials)
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, strings.Join(got.Candidates[0].Words, "-"), got.Candidates[0].Phrase)

	out, err = runCLI(t, dir, "generate", "--json", "--words", "2", "--top", "4", "--separator", ".")
	require.NoError(t, err)
	got = decodeGenerate(t, out)
	assert.Equal(t, 2, got.WordCount)
	assert.Equal(t, 22, got.EntropyBits)
	require.Len(t, got.Candidates, 4)
	assert.Equal(t, strings.Join(got.Candidates[0].Words, "."), got.Candidates[0].Phrase)
}

func TestGenerateCommand_Wordlist(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "# phonetic\nalpha\nbravo\ncharlie\n\ndelta\necho\n")

	out, err := runCLI(t, dir, "generate", "--wordlist", path, "--words", "3", "--trials", "40", "--seed", "4", "--json")
	require.NoError(t, err)

	got := decodeGenerate(t, out)
	assert.Equal(t, path, got.Wordlist)
	assert.Equal(t, 5, got.VocabularySize)
	assert.Equal(t, 6, got.EntropyBits)
	allowed := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	for _, c := range got.Candidates {
		seen := map[string]bool{}
		for _, w := range c.Words {
			assert.Contains(t, allowed, w)
			assert.False(t, seen[w], "words within a candidate are distinct")
			seen[w] = true
		}
	}
}

func TestGenerateCommand_AllCandidatesFail(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "straße\nfuß\n")

	_, err := runCLI(t, dir, "generate", "--wordlist", path, "--words", "1", "--trials", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, passphrase.ErrNoCandidates)
	assert.Equal(t, ExitNoCandidates, exitCode(err))
}

func TestGenerateCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"zero words", []string{"--words", "0"}, "word count"},
		{"zero top", []string{"--top", "0"}, "--top"},
		{"zero trials", []string{"--trials", "0"}, "--trials"},
		{"unknown scorer", []string{"--scorer", "levenshtein"}, "must be one of"},
		{"missing wordlist", []string{"--wordlist", "/does/not/exist"}, "opening word list"},
		{"positional args", []string{"extra"}, "unknown command"},
		{"interactive json", []string{"--interactive", "--json"}, "--json cannot be combined with --interactive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, t.TempDir(), append([]string{"generate"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, ExitError, exitCode(err))
		})
	}
}

func TestGenerateCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".passgen.yaml", "generate:\n  trials: -3\n")

	_, err := runCLI(t, dir, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/generate/trials")
}

// ---------------------------------------------------------------------------
// score
// ---------------------------------------------------------------------------

func TestScoreCommand_Table(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "score", "qp qp")
	require.NoError(t, err)

	assert.Contains(t, out, "qp qp")
	for _, typ := range scoring.DefaultTypes {
		assert.Contains(t, out, string(typ))
	}
	// Hand and finger switches are perfect, one-apart repeats are not.
	assert.Contains(t, out, "0.667")
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "score", "--json", "--scorer", "switch_hand", "--scorer", "double_letters", "fj", "hello")
	require.NoError(t, err)

	var got []scoreOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Composite)
	assert.InDelta(t, 1.0, *got[0].Composite, 1e-9)
	require.Len(t, got[0].Parts, 2)
	assert.Equal(t, "switch_hand", got[0].Parts[0].Scorer)

	require.NotNil(t, got[1].Composite)
	assert.InDelta(t, (0.5+scoring.DefaultSingleDoubleScore)/2, *got[1].Composite, 1e-9)
}

func TestScoreCommand_Unscorable(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "score", "ab1", "fjfj")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs could not be scored")
	assert.Contains(t, out, "error: switch_finger")
	assert.Equal(t, ExitError, exitCode(err))
}

func TestScoreCommand_RequiresArgs(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "score")
	require.Error(t, err)
}

// ---------------------------------------------------------------------------
// entropy
// ---------------------------------------------------------------------------

func TestEntropyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", nil, "44 bits (moderate): 4 words from 2,048 (bip39-english)"},
		{"vocab size", []string{"--words", "6", "--vocab-size", "7776"}, "77 bits (very strong): 6 words from 7,776 (--vocab-size)"},
		{"zero words", []string{"--words", "0"}, "0 bits (very weak)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, t.TempDir(), append([]string{"entropy"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestEntropyCommand_MinStrength(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "entropy", "--words", "6", "--min-strength", "strong")
	require.NoError(t, err)

	_, err = runCLI(t, t.TempDir(), "entropy", "--words", "3", "--min-strength", "strong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below the required strong")

	_, err = runCLI(t, t.TempDir(), "entropy", "--min-strength", "mighty")
	require.Error(t, err)
}

func TestEntropyCommand_ConfiguredWordlist(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "one\ntwo\nthree\nfour\n")
	writeFile(t, dir, ".passgen.yaml", "wordlist: words.txt\n")

	out, err := runCLI(t, dir, "entropy", "--words", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "10 bits (very weak): 5 words from 4")
}

// ---------------------------------------------------------------------------
// scorers
// ---------------------------------------------------------------------------

func TestScorersCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "scorers")
	require.NoError(t, err)

	for _, typ := range scoring.Types {
		assert.Contains(t, out, string(typ))
	}
	assert.Equal(t, len(scoring.DefaultTypes), strings.Count(out, " yes "))
	assert.NotContains(t, out, string(scoring.TypeComposite))
}
