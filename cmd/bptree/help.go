package main

import (
	"fmt"
	"io"
)

const storeOptions = `  -config string
        Path to configuration file
  -data-file string
        Tree data file (overrides config, default "bplustree.json")
  -order int
        Order of a new tree (overrides config, default 4)
  -split-policy string
        promote-median or copy-median (overrides config)
  -journal string
        Operation journal path (overrides config, default "bplustree_log.txt")
  -log-level string
        Log level: debug, info, warn, error (overrides config)
`

const envHelp = `
Environment Variables:
  BPTREE_TREE_ORDER          Override tree order
  BPTREE_TREE_SPLIT_POLICY   Override split policy
  BPTREE_STORAGE_DATA_FILE   Override data file path
  BPTREE_JOURNAL_PATH        Override journal path
  BPTREE_LOGGING_LEVEL       Override log level
`

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `bptree - B+ tree key/value manager

Usage:
  bptree <command> [options]

Commands:
  shell       Interactive menu over an in-memory tree
  insert      Insert a key into the data file
  search      Look up a key in the data file
  show        Print the tree structure
  config      Configuration management
  version     Show version information

Use "bptree <command> -h" for more information about a command.
`)
}

// printShellUsage prints the shell command usage.
func printShellUsage(w io.Writer) {
	fmt.Fprint(w, `Interactive menu over an in-memory tree

Usage:
  bptree shell [options]

The tree starts empty unless storage.loadOnStart is set. Use the save and
load menu entries to work with JSON files.

Options:
`+storeOptions+`  -h, -help
        Show this help message
`+envHelp)
}

// printInsertUsage prints the insert command usage.
func printInsertUsage(w io.Writer) {
	fmt.Fprint(w, `Insert a key into the data file

Usage:
  bptree insert -key <int> -value <string> [options]

The data file is loaded if it exists and written back after the insert.

Options:
  -key int
        Integer key (required)
  -value string
        Value to store
`+storeOptions+`  -h, -help
        Show this help message
`)
}

// printSearchUsage prints the search command usage.
func printSearchUsage(w io.Writer) {
	fmt.Fprint(w, `Look up a key in the data file

Usage:
  bptree search -key <int> [options]

Prints the value and exits 0, or prints "Key not found" and exits 1.

Options:
  -key int
        Integer key (required)
`+storeOptions+`  -h, -help
        Show this help message
`)
}

// printShowUsage prints the show command usage.
func printShowUsage(w io.Writer) {
	fmt.Fprint(w, `Print the tree structure

Usage:
  bptree show [options]

Options:
  -levels
        Group nodes by level
  -stats
        Print tree statistics
`+storeOptions+`  -h, -help
        Show this help message
`)
}

// printConfigUsage prints the config command usage.
func printConfigUsage(w io.Writer) {
	fmt.Fprint(w, `Configuration management

Usage:
  bptree config <subcommand> [options]

Subcommands:
  validate    Validate configuration file
  init        Generate default configuration
  show        Show effective configuration

Use "bptree config <subcommand> -h" for more information.
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  bptree version [options]

Options:
  -short
        Show only version number
  -h, -help
        Show this help message
`)
}
