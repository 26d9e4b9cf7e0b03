package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"studyqa/internal/chunker"
	"studyqa/internal/classify"
	"studyqa/internal/domain"
	"studyqa/internal/selector"
)

// Environment variables that override file values.
const (
	EnvDataset     = "STUDYQA_DATASET"
	EnvPolicy      = "STUDYQA_POLICY"
	EnvChunkWindow = "STUDYQA_CHUNK_WINDOW"
)

// DatasetConfig points at the question/answer CSV file.
type DatasetConfig struct {
	Path            string  `yaml:"path" toml:"path"`
	Label           string  `yaml:"label" toml:"label"`
	AcceptThreshold float64 `yaml:"accept_threshold" toml:"accept_threshold"`
}

// DocumentConfig describes one extra document source.
type DocumentConfig struct {
	Label string `yaml:"label" toml:"label"`
	Path  string `yaml:"path" toml:"path"`
	// Subject, when set, makes this source authoritative for queries
	// tagged with that subject under the subject_override policy.
	Subject         string  `yaml:"subject,omitempty" toml:"subject,omitempty"`
	AcceptThreshold float64 `yaml:"accept_threshold" toml:"accept_threshold"`
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	Window int `yaml:"window" toml:"window"`
}

// SelectionConfig selects the source selection policy.
type SelectionConfig struct {
	Policy          string  `yaml:"policy" toml:"policy"`
	RejectThreshold float64 `yaml:"reject_threshold" toml:"reject_threshold"`
}

// UIConfig holds display preferences.
type UIConfig struct {
	Emoji bool `yaml:"emoji" toml:"emoji"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Dataset   DatasetConfig    `yaml:"dataset" toml:"dataset"`
	Documents []DocumentConfig `yaml:"documents" toml:"documents"`
	Chunker   ChunkerConfig    `yaml:"chunker" toml:"chunker"`
	Selection SelectionConfig  `yaml:"selection" toml:"selection"`
	UI        UIConfig         `yaml:"ui" toml:"ui"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			if err := applyEnv(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	// Documents come from the file only.
	cfg.Documents = nil
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./studyqa.yaml first, then ~/.config/studyqa/config.yaml.
// If neither exists, it writes defaults to ~/.config/studyqa/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "studyqa.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	if err := Save(userPath, defaultConfig()); err != nil {
		return nil, "", err
	}
	cfg, err := Load(userPath)
	return cfg, userPath, err
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks thresholds, chunk window and policy.
func (c *AppConfig) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("%w: dataset path is required", domain.ErrConfiguration)
	}
	if c.Chunker.Window <= 0 {
		return fmt.Errorf("%w: chunk window must be positive, got %d", domain.ErrConfiguration, c.Chunker.Window)
	}
	if err := c.SelectorConfig().Validate(); err != nil {
		return err
	}
	if err := checkThreshold("dataset accept_threshold", c.Dataset.AcceptThreshold); err != nil {
		return err
	}
	labels := map[string]bool{c.Dataset.Label: true}
	subjects := map[string]bool{}
	for _, d := range c.Documents {
		if d.Label == "" || d.Path == "" {
			return fmt.Errorf("%w: every document needs a label and a path", domain.ErrConfiguration)
		}
		if labels[d.Label] {
			return fmt.Errorf("%w: duplicate source label %q", domain.ErrConfiguration, d.Label)
		}
		labels[d.Label] = true
		if d.Subject != "" {
			if subjects[d.Subject] {
				return fmt.Errorf("%w: subject %q is assigned to more than one document", domain.ErrConfiguration, d.Subject)
			}
			subjects[d.Subject] = true
		}
		if err := checkThreshold(d.Label+" accept_threshold", d.AcceptThreshold); err != nil {
			return err
		}
	}
	return nil
}

// SelectorConfig maps the selection section onto selector.Config.
func (c *AppConfig) SelectorConfig() selector.Config {
	specialized := make(map[string]string)
	for _, d := range c.Documents {
		if d.Subject != "" {
			specialized[d.Subject] = d.Label
		}
	}
	return selector.Config{
		Policy:              selector.Policy(c.Selection.Policy),
		RejectThreshold:     c.Selection.RejectThreshold,
		SpecializedSubjects: specialized,
	}
}

func checkThreshold(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %v outside [0,1]", domain.ErrConfiguration, name, v)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "studyqa", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Dataset: DatasetConfig{
			Path:            filepath.Join("data", "study_data.csv"),
			Label:           "Study Dataset",
			AcceptThreshold: selector.DefaultAcceptThreshold,
		},
		Documents: []DocumentConfig{{
			Label:           "Cyber Security Notes",
			Path:            filepath.Join("data", "cyber_security.pdf"),
			Subject:         classify.CyberSecurity,
			AcceptThreshold: selector.DefaultAcceptThreshold,
		}},
		Chunker: ChunkerConfig{Window: chunker.DefaultWindow},
		Selection: SelectionConfig{
			Policy:          string(selector.PolicySubjectOverride),
			RejectThreshold: selector.DefaultRejectThreshold,
		},
		UI: UIConfig{Emoji: true},
	}
}

// applyConfigDefaults fills fields a config file left empty. Dataset
// fields keep the defaults they were decoded over; a document without
// accept_threshold gets the default one.
func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Dataset.Label == "" {
		cfg.Dataset.Label = "Study Dataset"
	}
	for i := range cfg.Documents {
		d := &cfg.Documents[i]
		if d.Label == "" {
			d.Label = strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
		}
		if d.AcceptThreshold == 0 {
			d.AcceptThreshold = selector.DefaultAcceptThreshold
		}
	}
}

func applyEnv(cfg *AppConfig) error {
	if v := os.Getenv(EnvDataset); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv(EnvPolicy); v != "" {
		cfg.Selection.Policy = v
	}
	if v := os.Getenv(EnvChunkWindow); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", domain.ErrConfiguration, EnvChunkWindow, v)
		}
		cfg.Chunker.Window = n
	}
	return nil
}
