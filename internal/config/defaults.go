package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Tree: TreeConfig{
			Order:       4,
			SplitPolicy: "promote-median",
		},
		Storage: StorageConfig{
			DataFile:    "bplustree.json",
			LoadOnStart: false,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "bplustree_log.txt",
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
