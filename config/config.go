package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rowhound/rowhound/detector"
)

const (
	// defaultConfigFile is the default configuration file name
	defaultConfigFile = ".rowhound.yaml"

	// maxConfigSize is the maximum allowed configuration file size (1MB)
	maxConfigSize = 1 * 1024 * 1024

	// Configuration limits to prevent abuse
	maxKeywords   = 100 // Maximum number of keywords per list
	maxExtensions = 20  // Maximum number of file extensions
	maxWorkers    = 256 // Maximum worker count
)

// Config represents the configuration file structure. Keyword lists
// extend the built-in heuristics; they never replace them.
type Config struct {
	QueryKeywords []string `yaml:"query_keywords,omitempty"` // extra substrings marking query-like names
	QueryNames    []string `yaml:"query_names,omitempty"`    // extra exact-match query identifiers
	RowKeywords   []string `yaml:"row_keywords,omitempty"`   // extra substrings marking row-like names
	Extensions    []string `yaml:"extensions,omitempty"`     // file extensions to scan, default .py
	Workers       int      `yaml:"workers,omitempty"`        // parallel file scans, 0 = number of CPUs
}

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]+$`)

// LoadConfig loads the configuration file from the specified path.
// If path is empty, it looks for the default configuration file in the
// current directory and returns an empty Config when it does not exist.
// Returns an empty Config and an error if loading or validation fails.
func LoadConfig(path string) (Config, error) {
	// If no path specified, try default file
	if path == "" {
		path = defaultConfigFile
		if _, err := os.Stat(path); os.IsNotExist(err) {
			// Default file doesn't exist, return empty config (not an error)
			return Config{}, nil
		}
	}

	// Validate path to prevent path traversal for relative paths
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve config path: %w", err)
	}

	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}

		relPath, err := filepath.Rel(wd, absPath)
		if err != nil || strings.HasPrefix(relPath, "..") {
			return Config{}, fmt.Errorf("config file must be within the working directory: %s", path)
		}
	}

	// Check file size before reading
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}

	if fileInfo.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config file size (%d bytes) exceeds maximum allowed size (%d bytes)", fileInfo.Size(), maxConfigSize)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	limitedReader := io.LimitReader(file, maxConfigSize)

	decoder := yaml.NewDecoder(limitedReader)
	decoder.KnownFields(true) // Reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration structure and content
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateKeywords("query_keywords", config.QueryKeywords); err != nil {
		return err
	}
	if err := validateKeywords("query_names", config.QueryNames); err != nil {
		return err
	}
	if err := validateKeywords("row_keywords", config.RowKeywords); err != nil {
		return err
	}

	if len(config.Extensions) > maxExtensions {
		return fmt.Errorf("too many extensions: %d (max: %d)", len(config.Extensions), maxExtensions)
	}
	for _, ext := range config.Extensions {
		if !extensionPattern.MatchString(ext) {
			return fmt.Errorf("invalid extension %q (must match pattern: %s)", ext, extensionPattern.String())
		}
	}

	if config.Workers < 0 || config.Workers > maxWorkers {
		return fmt.Errorf("workers must be between 0 and %d, got %d", maxWorkers, config.Workers)
	}

	return nil
}

func validateKeywords(field string, words []string) error {
	if len(words) > maxKeywords {
		return fmt.Errorf("%s: too many entries: %d (max: %d)", field, len(words), maxKeywords)
	}
	for _, w := range words {
		if w == "" {
			return fmt.Errorf("%s: empty keyword", field)
		}
		if w != strings.ToLower(w) {
			return fmt.Errorf("%s: keyword %q must be lower-case (names are lower-cased before matching)", field, w)
		}
		if strings.ContainsAny(w, " \t\n") {
			return fmt.Errorf("%s: keyword %q must not contain whitespace", field, w)
		}
	}
	return nil
}

// Ruleset returns the built-in detection rules extended with the
// configured keyword lists.
func (c Config) Ruleset() *detector.Ruleset {
	rules := detector.DefaultRuleset()
	rules.AddQueryKeywords(c.QueryKeywords...)
	rules.AddQueryNames(c.QueryNames...)
	rules.AddRowKeywords(c.RowKeywords...)
	return rules
}
