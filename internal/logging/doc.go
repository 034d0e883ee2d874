// Package logging provides structured logging for the bptree tools.
//
// # Overview
//
// The logging package wraps log/slog behind a small interface with:
//
//   - Four log levels (debug, info, warn, error)
//   - Text (key=value) and JSON output formats
//   - Session IDs for interactive shells
//   - Field-based contextual logging
//
// # Creating a Logger
//
// Create a logger with configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "/var/log/bptree.log",
//	})
//
// For testing, use a no-op logger or a buffer:
//
//	logger := logging.NewNop()
//	logger := logging.NewWithWriter(&buf, logging.Config{Format: "json"})
//
// # Structured Logging
//
//	logger.Info("tree saved", "file", "tree.json", "height", 3)
//
// Output (JSON format):
//
//	{"ts":"2026-10-16T10:30:00Z","level":"info","msg":"tree saved","file":"tree.json","height":3}
//
// Output (text format):
//
//	ts=2026-10-16T10:30:00Z level=info msg="tree saved" file=tree.json height=3
//
// # Output Destinations
//
//	logging.Config{Output: "stdout"}           // Standard output
//	logging.Config{Output: "stderr"}           // Standard error
//	logging.Config{Output: "/var/log/bptree.log"} // File path, opened for append
package logging
