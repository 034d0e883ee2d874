package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KilimcininKorOglu/bptree/internal/config"
	"github.com/KilimcininKorOglu/bptree/internal/index"
	"github.com/KilimcininKorOglu/bptree/internal/logging"
)

// storeFlags are the options shared by every command that opens a store.
type storeFlags struct {
	configFile  *string
	dataFile    *string
	order       *int
	splitPolicy *string
	journal     *string
	logLevel    *string
}

func addStoreFlags(fs *flag.FlagSet) *storeFlags {
	return &storeFlags{
		configFile:  fs.String("config", "", "Path to configuration file"),
		dataFile:    fs.String("data-file", "", "Tree data file (overrides config)"),
		order:       fs.Int("order", 0, "Order of a new tree (overrides config)"),
		splitPolicy: fs.String("split-policy", "", "promote-median or copy-median (overrides config)"),
		journal:     fs.String("journal", "", "Operation journal path (overrides config)"),
		logLevel:    fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)"),
	}
}

// load builds the effective configuration: file, then BPTREE_* environment
// variables, then flags. The result is validated.
func (f *storeFlags) load() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if *f.configFile != "" {
		loaded, err := config.LoadConfig(*f.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if *f.dataFile != "" {
		cfg.Storage.DataFile = *f.dataFile
	}
	if *f.order != 0 {
		cfg.Tree.Order = *f.order
	}
	if *f.splitPolicy != "" {
		cfg.Tree.SplitPolicy = *f.splitPolicy
	}
	if *f.journal != "" {
		cfg.Journal.Path = *f.journal
	}
	if *f.logLevel != "" {
		cfg.Logging.Level = *f.logLevel
	}

	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %v", errs[0])
	}
	return cfg, nil
}

// openStore loads the configuration and opens a store with it.
func (f *storeFlags) openStore(loadOnStart bool) (*index.Store, logging.Logger, error) {
	cfg, err := f.load()
	if err != nil {
		return nil, nil, err
	}
	if loadOnStart {
		cfg.Storage.LoadOnStart = true
	}

	logger := newLogger(cfg)
	store, err := index.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, logger, nil
}

func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
