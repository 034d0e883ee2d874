package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/KilimcininKorOglu/bptree/internal/index"
	"github.com/KilimcininKorOglu/bptree/internal/logging"
	"github.com/KilimcininKorOglu/bptree/internal/render"
)

const menu = `
Choose an option:
1. Insert data
2. Search data
3. Show tree structure
4. Save tree to JSON
5. Load tree from JSON
6. Exit
`

// shellCmd handles the shell command.
func shellCmd(args []string) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := addStoreFlags(fs)
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printShellUsage(os.Stdout)
		return 0
	}

	store, logger, err := opts.openStore(false)
	if err != nil {
		return fail(err)
	}
	defer store.Close()

	if err := runShell(os.Stdin, os.Stdout, store, logger); err != nil {
		return fail(err)
	}
	return 0
}

// shell is one interactive session over a store.
type shell struct {
	in     *bufio.Scanner
	out    io.Writer
	store  *index.Store
	logger logging.Logger
}

// runShell reads menu choices from in until the user exits or in is exhausted.
func runShell(in io.Reader, out io.Writer, store *index.Store, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}
	sh := &shell{
		in:     bufio.NewScanner(in),
		out:    out,
		store:  store,
		logger: logger.WithSession(logging.GenerateSessionID()),
	}

	sh.logger.Info("shell started")
	defer sh.logger.Info("shell ended")

	fmt.Fprintln(out, "Welcome to the B+ tree data manager!")
	for {
		fmt.Fprint(out, menu)
		choice, ok := sh.prompt("Option")
		if !ok {
			return sh.in.Err()
		}

		switch strings.ToLower(choice) {
		case "1", "insert":
			sh.insert()
		case "2", "search":
			sh.search()
		case "3", "show":
			store.View(func(tree *index.Tree) {
				render.Table(out, tree)
			})
		case "4", "save":
			sh.save()
		case "5", "load":
			sh.load()
		case "6", "exit", "quit":
			fmt.Fprintln(out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Try again.")
		}
	}
}

func (sh *shell) insert() {
	key, ok := sh.promptKey("Key (integer)")
	if !ok {
		return
	}
	value, ok := sh.prompt("Value")
	if !ok {
		return
	}

	if err := sh.store.Insert(key, value); err != nil {
		fmt.Fprintf(sh.out, "Insert failed: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Key %d with value '%s' inserted.\n", key, value)
}

func (sh *shell) search() {
	key, ok := sh.promptKey("Key to search")
	if !ok {
		return
	}

	value, found, err := sh.store.Search(key)
	switch {
	case err != nil:
		fmt.Fprintf(sh.out, "Search failed: %v\n", err)
	case found:
		fmt.Fprintf(sh.out, "Value found: %s\n", value)
	default:
		fmt.Fprintln(sh.out, "Key not found.")
	}
}

func (sh *shell) save() {
	path, ok := sh.promptPath()
	if !ok {
		return
	}

	if err := sh.store.Save(path); err != nil {
		fmt.Fprintf(sh.out, "Could not save tree: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Tree saved to '%s'.\n", sh.orDefault(path))
}

func (sh *shell) load() {
	path, ok := sh.promptPath()
	if !ok {
		return
	}

	err := sh.store.Load(path)
	switch {
	case err == nil:
		fmt.Fprintf(sh.out, "Tree loaded from '%s'.\n", sh.orDefault(path))
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(sh.out, "File '%s' not found.\n", sh.orDefault(path))
	default:
		fmt.Fprintf(sh.out, "Could not load '%s': %v\n", sh.orDefault(path), err)
	}
}

// prompt prints label and returns the next trimmed input line.
// ok is false once the input is exhausted.
func (sh *shell) prompt(label string) (string, bool) {
	fmt.Fprintf(sh.out, "%s: ", label)
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *shell) promptKey(label string) (int64, bool) {
	s, ok := sh.prompt(label)
	if !ok {
		return 0, false
	}
	key, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintf(sh.out, "Invalid key %q: must be an integer.\n", s)
		return 0, false
	}
	return key, true
}

// promptPath asks for a JSON file name; an empty answer selects the data file.
func (sh *shell) promptPath() (string, bool) {
	return sh.prompt(fmt.Sprintf("JSON file name [%s]", sh.store.DataFile()))
}

func (sh *shell) orDefault(path string) string {
	if path == "" {
		return sh.store.DataFile()
	}
	return path
}
