// Package projectconfig provides the ProjectConfig struct and loader for
// .passgen.yaml configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spboyer/passgen/internal/generate"
	"github.com/spboyer/passgen/internal/ranking"
	"github.com/spboyer/passgen/internal/scoring"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by [Load].
const FileName = ".passgen.yaml"

// Default values for configuration. New() references them and no other
// code should duplicate them.
const (
	DefaultWordCount = 4
	DefaultTrials    = generate.DefaultTrials
	DefaultTop       = ranking.DefaultTop
	DefaultWorkers   = generate.DefaultWorkers
	DefaultSeed      = -1
	DefaultSeparator = " "

	// MinInteractiveWords and MaxInteractiveWords bound the interactive
	// word-count picker. Flags and config accept any count of 1 or more.
	MinInteractiveWords = 3
	MaxInteractiveWords = 12
)

// GenerateConfig holds generation settings.
type GenerateConfig struct {
	WordCount  int     `yaml:"word_count,omitempty"`
	Trials     int     `yaml:"trials,omitempty"`
	Top        int     `yaml:"top,omitempty"`
	Workers    int     `yaml:"workers,omitempty"`
	Seed       *int64  `yaml:"seed,omitempty"`
	KeepFailed *bool   `yaml:"keep_failed,omitempty"`
	Separator  *string `yaml:"separator,omitempty"`
}

// ScorerConfig selects one scorer. In YAML it is either a bare type name or
// a mapping with type and params.
type ScorerConfig struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

func (s *ScorerConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Type = node.Value
		return nil
	}
	type plain ScorerConfig
	return node.Decode((*plain)(s))
}

// ProjectConfig is the top-level configuration loaded from .passgen.yaml.
type ProjectConfig struct {
	Generate GenerateConfig `yaml:"generate,omitempty"`
	Scorers  []ScorerConfig `yaml:"scorers,omitempty"`
	Wordlist string         `yaml:"wordlist,omitempty"`

	// Dir is the directory of the file the config was read from, empty when
	// only defaults are in effect.
	Dir string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	scorers := make([]ScorerConfig, len(scoring.DefaultTypes))
	for i, t := range scoring.DefaultTypes {
		scorers[i] = ScorerConfig{Type: string(t)}
	}

	return &ProjectConfig{
		Generate: GenerateConfig{
			WordCount:  DefaultWordCount,
			Trials:     DefaultTrials,
			Top:        DefaultTop,
			Workers:    DefaultWorkers,
			Seed:       int64Ptr(DefaultSeed),
			KeepFailed: boolPtr(false),
			Separator:  stringPtr(DefaultSeparator),
		},
		Scorers: scorers,
	}
}

// Load finds .passgen.yaml by walking up from startDir (max 10 levels),
// validates and unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	fileCfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	mergeConfig(cfg, fileCfg)
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse validates data against the config schema and decodes it. Fields the
// document leaves out stay zero.
func Parse(data []byte) (*ProjectConfig, error) {
	if errs := ValidateBytes(data); len(errs) > 0 {
		return nil, &ValidationError{Problems: errs}
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &cfg, nil
}

// findConfigFile walks up from dir looking for .passgen.yaml. Returns
// os.ErrNotExist if no config file is found and propagates real I/O errors.
func findConfigFile(dir string) (string, []byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Generate.WordCount != 0 {
		dst.Generate.WordCount = src.Generate.WordCount
	}
	if src.Generate.Trials != 0 {
		dst.Generate.Trials = src.Generate.Trials
	}
	if src.Generate.Top != 0 {
		dst.Generate.Top = src.Generate.Top
	}
	if src.Generate.Workers != 0 {
		dst.Generate.Workers = src.Generate.Workers
	}
	if src.Generate.Seed != nil {
		dst.Generate.Seed = src.Generate.Seed
	}
	if src.Generate.KeepFailed != nil {
		dst.Generate.KeepFailed = src.Generate.KeepFailed
	}
	if src.Generate.Separator != nil {
		dst.Generate.Separator = src.Generate.Separator
	}

	if len(src.Scorers) > 0 {
		dst.Scorers = src.Scorers
	}
	if src.Wordlist != "" {
		dst.Wordlist = src.Wordlist
	}
}

// ScorerSpecs converts the configured scorers to build specs.
func (c *ProjectConfig) ScorerSpecs() ([]scoring.Spec, error) {
	specs := make([]scoring.Spec, 0, len(c.Scorers))
	for _, sc := range c.Scorers {
		t, err := scoring.ParseType(sc.Type)
		if err != nil {
			return nil, err
		}
		specs = append(specs, scoring.Spec{Type: t, Params: sc.Params})
	}
	return specs, nil
}

// WordlistPath returns the configured word list path, resolved against the
// config file's directory when relative. Empty means the built-in list.
func (c *ProjectConfig) WordlistPath() string {
	if c.Wordlist == "" || filepath.IsAbs(c.Wordlist) || c.Dir == "" {
		return c.Wordlist
	}
	return filepath.Join(c.Dir, c.Wordlist)
}

func boolPtr(b bool) *bool {
	return &b
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}
