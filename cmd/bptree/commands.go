package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/KilimcininKorOglu/bptree/internal/index"
	"github.com/KilimcininKorOglu/bptree/internal/render"
)

// insertCmd handles the insert command.
// The data file is loaded if present, updated and saved back.
func insertCmd(args []string) int {
	fs := flag.NewFlagSet("insert", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := addStoreFlags(fs)
	keyArg := fs.String("key", "", "Integer key (required)")
	value := fs.String("value", "", "Value to store")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printInsertUsage(os.Stdout)
		return 0
	}

	key, err := parseKey(*keyArg)
	if err != nil {
		return fail(err)
	}

	store, _, err := opts.openStore(true)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := store.Insert(key, *value); err != nil {
		return fail(err)
	}
	if err := store.Save(""); err != nil {
		return fail(err)
	}

	fmt.Printf("Key %d with value '%s' inserted\n", key, *value)
	return 0
}

// searchCmd handles the search command. A miss exits with status 1.
func searchCmd(args []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := addStoreFlags(fs)
	keyArg := fs.String("key", "", "Integer key (required)")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printSearchUsage(os.Stdout)
		return 0
	}

	key, err := parseKey(*keyArg)
	if err != nil {
		return fail(err)
	}

	store, _, err := opts.openStore(true)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	value, found, err := store.Search(key)
	if err != nil {
		return fail(err)
	}
	if !found {
		fmt.Println("Key not found")
		return 1
	}

	fmt.Println(value)
	return 0
}

// showCmd handles the show command.
func showCmd(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := addStoreFlags(fs)
	levels := fs.Bool("levels", false, "Group nodes by level")
	stats := fs.Bool("stats", false, "Print tree statistics")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printShowUsage(os.Stdout)
		return 0
	}

	store, _, err := opts.openStore(true)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	store.View(func(tree *index.Tree) {
		switch {
		case *stats:
			render.Summary(os.Stdout, tree)
		case *levels:
			render.LevelTable(os.Stdout, tree)
		default:
			render.Table(os.Stdout, tree)
		}
	})
	return 0
}

var errKeyRequired = errors.New("-key is required")

func parseKey(s string) (int64, error) {
	if s == "" {
		return 0, errKeyRequired
	}
	key, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: must be an integer", s)
	}
	return key, nil
}
