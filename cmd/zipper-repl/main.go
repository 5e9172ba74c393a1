// zipper-repl is an interactive shell for exploring zipper navigation
// and editing over trees written in parenthesized-list notation,
// e.g. "(a (b c) d)".
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phroun/zipper"
	"github.com/phroun/zipper/sexpr"
)

// REPL holds the state of the interactive session.
type REPL struct {
	loc     zipper.Location[string]
	hasTree bool

	// memo wraps loc lazily on the first "memo" command and is dropped
	// whenever the focus moves, so cached indices always refer to the
	// location the user is looking at.
	memo    zipper.MemoLocation[string]
	hasMemo bool

	reader *bufio.Reader
	log    *zap.SugaredLogger
}

func main() {
	var (
		initial string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "zipper-repl",
		Short:         "Interactive zipper navigation demo",
		Long:          "zipper-repl navigates and edits immutable trees with a Huet-style zipper.\nTrees are written in parenthesized-list notation, e.g. \"(a (b c) d)\".",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(initial, verbose)
		},
	}
	rootCmd.Flags().StringVar(&initial, "tree", "", "initial tree in sexpr notation")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(initial string, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return errors.Wrap(err, "initializing logger")
	}
	defer logger.Sync()

	repl := &REPL{
		reader: bufio.NewReader(os.Stdin),
		log:    logger.Sugar(),
	}

	if initial != "" {
		tree, err := sexpr.Parse(initial)
		if err != nil {
			return errors.Wrap(err, "parsing --tree")
		}
		repl.setLocation(zipper.New(tree))
		repl.log.Debugw("loaded initial tree", "tree", tree.String())
	}

	fmt.Println("Zipper REPL - Interactive Tree Navigation Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	for {
		fmt.Print("zipper> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			return nil
		}
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func (r *REPL) handleCommand(input string) bool {
	cmd, rest, _ := strings.Cut(input, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.cmdNew(rest)

	case "show":
		r.cmdShow()

	case "tree":
		r.cmdTree()

	case "left":
		r.cmdMove("left", zipper.Location[string].GoLeft)

	case "right":
		r.cmdMove("right", zipper.Location[string].GoRight)

	case "up":
		r.cmdMove("up", zipper.Location[string].GoUp)

	case "down":
		r.cmdMove("down", zipper.Location[string].GoDown)

	case "nth":
		r.cmdNth(rest)

	case "memo":
		r.cmdMemo(rest)

	case "change":
		r.cmdChange(rest)

	case "insertleft":
		r.cmdInsert(rest, "left", zipper.Location[string].InsertLeft)

	case "insertright":
		r.cmdInsert(rest, "right", zipper.Location[string].InsertRight)

	case "insertdown":
		r.cmdInsert(rest, "down", zipper.Location[string].InsertDown)

	case "delete":
		r.cmdDelete()

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

TREE OPERATIONS:
  new <sexpr>             Start over with a new tree, e.g. new (a (b c) d)
  show                    Show the focused subtree and its siblings
  tree                    Reassemble and show the whole tree

MOVEMENT:
  left                    Focus the nearest left sibling
  right                   Focus the nearest right sibling
  up                      Focus the enclosing section
  down                    Focus the first child
  nth <n>                 Focus the n'th child (0-based)
  memo <n>                Like nth, but cached against the current focus

EDITS (all non-destructive; earlier trees are never modified):
  change <sexpr>          Replace the focused subtree
  insertleft <sexpr>      Insert a left sibling of the focus
  insertright <sexpr>     Insert a right sibling of the focus
  insertdown <sexpr>      Splice in a new first child and focus it
  delete                  Remove the focus (next sibling takes over)

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Println(help)
}

// setLocation installs a new focus and drops any memo wrapper, whose
// cache was scoped to the previous focus.
func (r *REPL) setLocation(loc zipper.Location[string]) {
	r.loc = loc
	r.hasTree = true
	r.hasMemo = false
}

func (r *REPL) requireTree() bool {
	if !r.hasTree {
		fmt.Println("No tree loaded. Use 'new <sexpr>' first.")
		return false
	}
	return true
}

func (r *REPL) cmdNew(arg string) {
	if arg == "" {
		fmt.Println("Usage: new <sexpr>")
		return
	}

	tree, err := sexpr.Parse(arg)
	if err != nil {
		r.log.Debugw("parse failed", "input", arg, "error", err)
		fmt.Printf("Parse error: %v\n", err)
		return
	}

	r.setLocation(zipper.New(tree))
	fmt.Printf("Focused: %s\n", sexpr.Format(tree))
}

func (r *REPL) cmdShow() {
	if !r.requireTree() {
		return
	}

	fmt.Printf("Focused: %s\n", sexpr.Format(r.loc.Cursor()))

	if p := r.loc.Path(); p != nil && p.Parent() != nil {
		left := p.Left()
		right := p.Right()
		fmt.Printf("Siblings: %d left, %d right\n", len(left), len(right))
		if len(left) > 0 {
			fmt.Printf("  nearest left:  %s\n", sexpr.Format(left[0]))
		}
		if len(right) > 0 {
			fmt.Printf("  nearest right: %s\n", sexpr.Format(right[0]))
		}
	} else {
		fmt.Println("At the top of the tree.")
	}
}

func (r *REPL) cmdTree() {
	if !r.requireTree() {
		return
	}

	// Ascend to the synthetic context layer installed by zipper.New,
	// but never through it: one more step would rebuild a section
	// holding the original tree twice.
	loc := r.loc
	for loc.Path() != nil && loc.Path().Parent() != nil {
		up, ok := loc.GoUp()
		if !ok {
			break
		}
		loc = up
	}
	fmt.Printf("Tree: %s\n", sexpr.Format(loc.Cursor()))
}

func (r *REPL) cmdMove(dir string, move func(zipper.Location[string]) (zipper.Location[string], bool)) {
	if !r.requireTree() {
		return
	}

	next, ok := move(r.loc)
	if !ok {
		fmt.Printf("Cannot move %s from here.\n", dir)
		return
	}
	r.setLocation(next)
	fmt.Printf("Focused: %s\n", sexpr.Format(r.loc.Cursor()))
}

func (r *REPL) cmdNth(arg string) {
	if !r.requireTree() {
		return
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: nth <n>")
		return
	}

	next, ok := r.loc.Nth(n)
	if !ok {
		fmt.Printf("No child at index %d.\n", n)
		return
	}
	r.setLocation(next)
	fmt.Printf("Focused: %s\n", sexpr.Format(r.loc.Cursor()))
}

func (r *REPL) cmdMemo(arg string) {
	if !r.requireTree() {
		return
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: memo <n>")
		return
	}

	if !r.hasMemo {
		r.memo = r.loc.WithMemo()
		r.hasMemo = true
		r.log.Debugw("installed memo wrapper")
	}

	result, ok := r.memo.Nth(n)
	if !ok {
		fmt.Printf("No child at index %d.\n", n)
		return
	}
	// Report without moving: the wrapper's cache stays pinned to the
	// current focus so later memo lookups keep hitting it.
	fmt.Printf("Child %d: %s\n", n, sexpr.Format(result.Location().Cursor()))
}

func (r *REPL) cmdChange(arg string) {
	if !r.requireTree() {
		return
	}
	if arg == "" {
		fmt.Println("Usage: change <sexpr>")
		return
	}

	tree, err := sexpr.Parse(arg)
	if err != nil {
		fmt.Printf("Parse error: %v\n", err)
		return
	}

	r.setLocation(r.loc.Change(tree))
	fmt.Printf("Focused: %s\n", sexpr.Format(r.loc.Cursor()))
}

func (r *REPL) cmdInsert(arg, dir string, insert func(zipper.Location[string], *zipper.Tree[string]) (zipper.Location[string], bool)) {
	if !r.requireTree() {
		return
	}
	if arg == "" {
		fmt.Printf("Usage: insert%s <sexpr>\n", dir)
		return
	}

	tree, err := sexpr.Parse(arg)
	if err != nil {
		fmt.Printf("Parse error: %v\n", err)
		return
	}

	next, ok := insert(r.loc, tree)
	if !ok {
		fmt.Printf("Cannot insert %s from here.\n", dir)
		return
	}
	r.setLocation(next)
	fmt.Printf("Focused: %s\n", sexpr.Format(r.loc.Cursor()))
}

func (r *REPL) cmdDelete() {
	if !r.requireTree() {
		return
	}

	next, ok := r.loc.Delete()
	if !ok {
		fmt.Println("Cannot delete the top of the tree.")
		return
	}
	r.setLocation(next)
	fmt.Printf("Focused: %s\n", sexpr.Format(r.loc.Cursor()))
}
