package projectconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spboyer/passgen/internal/scoring"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	require.Equal(t, 4, cfg.Generate.WordCount)
	require.Equal(t, 500, cfg.Generate.Trials)
	require.Equal(t, 5, cfg.Generate.Top)
	require.Equal(t, 4, cfg.Generate.Workers)
	require.Equal(t, int64(-1), *cfg.Generate.Seed)
	require.False(t, *cfg.Generate.KeepFailed)
	require.Equal(t, " ", *cfg.Generate.Separator)
	require.Empty(t, cfg.Wordlist)
	require.Empty(t, cfg.Dir)

	specs, err := cfg.ScorerSpecs()
	require.NoError(t, err)
	require.Len(t, specs, len(scoring.DefaultTypes))
	for i, s := range specs {
		require.Equal(t, scoring.DefaultTypes[i], s.Type)
		require.Nil(t, s.Params)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
generate:
  word_count: 6
  trials: 1000
  top: 3
  workers: 8
  seed: 42
  keep_failed: true
  separator: "-"
scorers:
  - switch_hand
  - type: double_letters
    params:
      single_double_score: 0.25
wordlist: words.txt
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, 6, cfg.Generate.WordCount)
	require.Equal(t, 1000, cfg.Generate.Trials)
	require.Equal(t, 3, cfg.Generate.Top)
	require.Equal(t, 8, cfg.Generate.Workers)
	require.Equal(t, int64(42), *cfg.Generate.Seed)
	require.True(t, *cfg.Generate.KeepFailed)
	require.Equal(t, "-", *cfg.Generate.Separator)

	specs, err := cfg.ScorerSpecs()
	require.NoError(t, err)
	require.Equal(t, []scoring.Spec{
		{Type: scoring.TypeSwitchHand},
		{Type: scoring.TypeDoubleLetters, Params: map[string]any{"single_double_score": 0.25}},
	}, specs)

	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(abs, "words.txt"), cfg.WordlistPath())

	composite, err := scoring.Build(specs)
	require.NoError(t, err)
	require.Len(t, composite.Scorers(), 2)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
generate:
  trials: 50
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Generate.Trials)
	require.Equal(t, DefaultWordCount, cfg.Generate.WordCount)
	require.Equal(t, DefaultTop, cfg.Generate.Top)
	require.Equal(t, int64(DefaultSeed), *cfg.Generate.Seed)
	require.Len(t, cfg.Scorers, len(scoring.DefaultTypes))
}

func TestLoad_NoConfigReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, New(), cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, DefaultTrials, cfg.Generate.Trials)
}

func TestLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, FileName, "generate:\n  word_count: 7\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Generate.WordCount)

	abs, err := filepath.Abs(root)
	require.NoError(t, err)
	require.Equal(t, abs, cfg.Dir)
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLoc string
	}{
		{"zero words", "generate:\n  word_count: 0\n", "/generate/word_count"},
		{"string trials", "generate:\n  trials: many\n", "/generate/trials"},
		{"unknown key", "colour: blue\n", "/"},
		{"unknown scorer", "scorers:\n  - levenshtein\n", "/scorers/0"},
		{"composite scorer", "scorers:\n  - composite\n", "/scorers/0"},
		{"empty scorers", "scorers: []\n", "/scorers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)

			_, err := Load(dir)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			require.NotEmpty(t, ve.Problems)
			require.Contains(t, err.Error(), tt.wantLoc)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "generate: [unterminated\n")

	_, err := Load(dir)
	require.ErrorContains(t, err, "YAML parse error")
}

func TestLoad_BadScorerParamsSurfaceOnBuild(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
scorers:
  - type: switch_hand
    params:
      weight: 2
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	specs, err := cfg.ScorerSpecs()
	require.NoError(t, err)

	_, err = scoring.Build(specs)
	require.ErrorContains(t, err, "switch_hand params")
}

func TestWordlistPath(t *testing.T) {
	cfg := New()
	require.Empty(t, cfg.WordlistPath())

	cfg.Wordlist = "/etc/words"
	cfg.Dir = "/srv/project"
	require.Equal(t, "/etc/words", cfg.WordlistPath())

	cfg.Wordlist = "lists/eff.txt"
	require.Equal(t, filepath.Join("/srv/project", "lists/eff.txt"), cfg.WordlistPath())

	cfg.Dir = ""
	require.Equal(t, "lists/eff.txt", cfg.WordlistPath())
}

func TestScorerConfig_ScalarAndMapping(t *testing.T) {
	cfg, err := Parse([]byte("scorers:\n  - pinky_disfavor\n  - type: switch_finger\n"))
	require.NoError(t, err)
	require.Equal(t, []ScorerConfig{
		{Type: "pinky_disfavor"},
		{Type: "switch_finger"},
	}, cfg.Scorers)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
