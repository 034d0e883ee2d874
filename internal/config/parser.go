package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser errors.
var (
	ErrInvalidYAML  = errors.New("invalid YAML format")
	ErrFileNotFound = errors.New("configuration file not found")
)

// Environment variables that override file values.
const (
	EnvTreeOrder       = "BPTREE_TREE_ORDER"
	EnvTreeSplitPolicy = "BPTREE_TREE_SPLIT_POLICY"
	EnvDataFile        = "BPTREE_STORAGE_DATA_FILE"
	EnvJournalPath     = "BPTREE_JOURNAL_PATH"
	EnvLogLevel        = "BPTREE_LOGGING_LEVEL"
)

// LoadConfig loads configuration from a file path.
// It reads the file, substitutes environment variables, parses YAML,
// and applies defaults for missing values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data.
// Keys that are not part of Config are rejected.
func ParseConfig(data []byte) (*Config, error) {
	data = substituteEnvVars(data)

	config := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return config, nil
}

// ApplyEnv overrides configuration values from BPTREE_* environment variables.
func ApplyEnv(config *Config) error {
	if v := os.Getenv(EnvTreeOrder); v != "" {
		order, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTreeOrder, err)
		}
		config.Tree.Order = order
	}
	if v := os.Getenv(EnvTreeSplitPolicy); v != "" {
		config.Tree.SplitPolicy = v
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		config.Storage.DataFile = v
	}
	if v := os.Getenv(EnvJournalPath); v != "" {
		config.Journal.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
	return nil
}

// Marshal renders config as YAML.
func Marshal(config *Config) ([]byte, error) {
	return yaml.Marshal(config)
}

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if idx := strings.Index(content, ":-"); idx != -1 {
			varName := content[:idx]
			defaultVal := content[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return []byte(val)
			}
			return []byte(defaultVal)
		}

		return []byte(os.Getenv(content))
	})
}
