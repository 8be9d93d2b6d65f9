package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input modes.
const (
	ModeDocument = "document"
	ModeLines    = "lines"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration for keyword-extractor
type Config struct {
	// Matching
	CaseSensitive bool     `yaml:"case_sensitive" env:"KEYWORD_EXTRACTOR_CASE_SENSITIVE"`
	Keywords      []string `yaml:"keywords" env:"KEYWORD_EXTRACTOR_KEYWORDS"`
	KeywordFiles  []string `yaml:"keyword_files" env:"KEYWORD_EXTRACTOR_KEYWORD_FILES"`

	// Input and output
	Mode   string `yaml:"mode" env:"KEYWORD_EXTRACTOR_MODE"`
	Format string `yaml:"format" env:"KEYWORD_EXTRACTOR_FORMAT"`

	Debug bool `yaml:"debug" env:"KEYWORD_EXTRACTOR_DEBUG"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CaseSensitive: false,
		Mode:          ModeDocument,
		Format:        FormatText,
	}
}

// Load loads configuration from the default file location and environment
func Load() (*Config, error) {
	return LoadFile(getConfigPath())
}

// LoadFile loads configuration from path and the environment. A missing file
// is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// AllKeywords returns the inline keywords followed by the contents of every
// keyword file.
func (c *Config) AllKeywords() ([]string, error) {
	keywords := make([]string, 0, len(c.Keywords))
	keywords = append(keywords, c.Keywords...)
	for _, path := range c.KeywordFiles {
		fromFile, err := LoadKeywordFile(path)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, fromFile...)
	}
	return keywords, nil
}

// LoadKeywordFile reads one keyword per line. Surrounding whitespace is
// trimmed; blank lines and lines starting with '#' are skipped.
func LoadKeywordFile(path string) ([]string, error) {
	// #nosec G304 - keyword files are chosen by the user running the tool
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyword file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keyword file %q: %w", path, err)
	}
	return keywords, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("KEYWORD_EXTRACTOR_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "keyword-extractor", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "keyword-extractor", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("KEYWORD_EXTRACTOR_CASE_SENSITIVE"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid KEYWORD_EXTRACTOR_CASE_SENSITIVE value: %w", err)
		}
		cfg.CaseSensitive = b
	}

	if v := os.Getenv("KEYWORD_EXTRACTOR_KEYWORDS"); v != "" {
		cfg.Keywords = splitList(v)
	}

	if v := os.Getenv("KEYWORD_EXTRACTOR_KEYWORD_FILES"); v != "" {
		cfg.KeywordFiles = splitList(v)
	}

	if v := os.Getenv("KEYWORD_EXTRACTOR_MODE"); v != "" {
		cfg.Mode = v
	}

	if v := os.Getenv("KEYWORD_EXTRACTOR_FORMAT"); v != "" {
		cfg.Format = v
	}

	if v := os.Getenv("KEYWORD_EXTRACTOR_DEBUG"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("invalid KEYWORD_EXTRACTOR_DEBUG value: %w", err)
		}
		cfg.Debug = b
	}

	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q (use true/false)", v)
	}
}

// splitList splits a comma-separated value, dropping empty entries
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Mode {
	case ModeDocument, ModeLines:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeDocument, ModeLines, cfg.Mode)
	}

	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be one of %q, %q, %q, got %q", FormatText, FormatJSON, FormatYAML, cfg.Format)
	}

	return nil
}
