// Package config provides configuration parsing for the bptree tools.
package config

// Config holds the complete configuration.
type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Storage StorageConfig `yaml:"storage"`
	Journal JournalConfig `yaml:"journal"`
	Logging LogConfig     `yaml:"logging"`
}

// TreeConfig holds the shape of newly created trees.
type TreeConfig struct {
	Order       int    `yaml:"order"`
	SplitPolicy string `yaml:"splitPolicy"`
}

// StorageConfig holds snapshot file configuration.
type StorageConfig struct {
	DataFile string `yaml:"dataFile"`
	// LoadOnStart loads DataFile, if it exists, when a store is opened.
	LoadOnStart bool `yaml:"loadOnStart"`
}

// JournalConfig holds the operation journal configuration.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}
