package visualizer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"cotviz-api/pkg/confkit"
)

// Config controls runtime behaviour of the analysis engine.
type Config struct {
	// Model is the llm client model alias; empty uses the client default.
	Model string `yaml:"model"`
	// PromptTemplate optionally points at a template file overriding the
	// embedded default.
	PromptTemplate string        `yaml:"prompt_template"`
	Timeout        time.Duration `yaml:"-"`
	// JournalDir enables on-disk analysis records when non-empty.
	JournalDir string `yaml:"journal_dir"`

	timeoutRaw string
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open visualizer config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read visualizer config: %w", err)
	}

	var raw struct {
		Model          string `yaml:"model"`
		PromptTemplate string `yaml:"prompt_template"`
		Timeout        string `yaml:"timeout"`
		JournalDir     string `yaml:"journal_dir"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal visualizer config: %w", err)
	}

	cfg := &Config{
		Model:          raw.Model,
		PromptTemplate: os.ExpandEnv(raw.PromptTemplate),
		JournalDir:     os.ExpandEnv(raw.JournalDir),
		timeoutRaw:     raw.Timeout,
	}
	if err := cfg.parseTimeout(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config usable without any file on disk.
func Default() *Config {
	return &Config{Timeout: 2 * time.Minute}
}

// Validate checks invariants the engine relies on.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("visualizer config: timeout must be positive")
	}
	return nil
}

func (c *Config) parseTimeout() error {
	if strings.TrimSpace(c.timeoutRaw) == "" {
		c.Timeout = 2 * time.Minute
		return nil
	}
	d, err := time.ParseDuration(c.timeoutRaw)
	if err != nil {
		return fmt.Errorf("visualizer config: invalid timeout %q: %w", c.timeoutRaw, err)
	}
	if d <= 0 {
		return fmt.Errorf("visualizer config: timeout must be positive, got %s", d)
	}
	c.Timeout = d
	return nil
}
