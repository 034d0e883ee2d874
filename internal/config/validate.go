package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KilimcininKorOglu/bptree/internal/btree"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateTreeConfig(&config.Tree)...)
	errs = append(errs, validateStorageConfig(&config.Storage)...)
	errs = append(errs, validateJournalConfig(&config.Journal)...)
	errs = append(errs, validateLogConfig(&config.Logging)...)

	return errs
}

func validateTreeConfig(config *TreeConfig) []error {
	var errs []error

	if config.Order < btree.MinOrder {
		errs = append(errs, ValidationError{
			Field:   "tree.order",
			Message: fmt.Sprintf("must be at least %d", btree.MinOrder),
		})
	}

	if _, err := btree.ParseSplitPolicy(config.SplitPolicy); err != nil {
		errs = append(errs, ValidationError{
			Field:   "tree.splitPolicy",
			Message: "must be promote-median or copy-median",
		})
	}

	return errs
}

func validateStorageConfig(config *StorageConfig) []error {
	var errs []error

	if config.DataFile == "" {
		errs = append(errs, ValidationError{
			Field:   "storage.dataFile",
			Message: "is required",
		})
	} else if err := validateParentDir(config.DataFile); err != nil {
		errs = append(errs, ValidationError{
			Field:   "storage.dataFile",
			Message: err.Error(),
		})
	}

	return errs
}

func validateJournalConfig(config *JournalConfig) []error {
	var errs []error

	if !config.Enabled {
		return errs
	}

	if config.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "journal.path",
			Message: "is required when the journal is enabled",
		})
	} else if err := validateParentDir(config.Path); err != nil {
		errs = append(errs, ValidationError{
			Field:   "journal.path",
			Message: err.Error(),
		})
	}

	return errs
}

func validateLogConfig(config *LogConfig) []error {
	var errs []error

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(config.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, or error",
		})
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(config.Format)] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		if err := validateParentDir(config.Output); err != nil {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: err.Error(),
			})
		}
	}

	return errs
}

// validateParentDir checks that the directory holding path exists.
func validateParentDir(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("directory %s does not exist", dir)
	}
	return nil
}
