package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
	"github.com/Sumatoshi-tech/zipper/pkg/zipper"
)

// minExploreArgs is the minimum number of words for commands that take
// an argument.
const minExploreArgs = 2

func exploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Interactive cursor session over a JSON document",
		Long: `Start an interactive session that moves a cursor through the
document. Edits are local to the cursor until 'commit' rebuilds the root.

Examples:
  zipper explore data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExplore(args[0])
		},
	}

	return cmd
}

// session holds the interactive state: the current cursor and the
// rendering configuration.
type session struct {
	cursor   *zipper.Cursor[*tree.Node]
	focusTag *color.Color
	errTag   *color.Color
	maxWidth int
}

func runExplore(path string) error {
	cursor, _, err := loadCursor(path)
	if err != nil {
		return err
	}

	color.NoColor = color.NoColor || !cfg.Output.Color

	sess := &session{
		cursor:   cursor,
		focusTag: color.New(color.FgCyan, color.Bold),
		errTag:   color.New(color.FgRed),
		maxWidth: cfg.Output.MaxValueWidth,
	}

	fmt.Printf("Exploring %s\n", path)                      //nolint:forbidigo // CLI user output
	fmt.Println("Type 'help' for commands, 'quit' to exit") //nolint:forbidigo // CLI user output
	sess.printFocus()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("zipper> ") //nolint:forbidigo // CLI user output

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "quit" || line == "exit" {
			break
		}

		if line == "help" {
			printExploreHelp()

			continue
		}

		sess.handle(strings.Fields(line))
	}

	return nil
}

func (sess *session) handle(parts []string) {
	switch parts[0] {
	case "focus":
		sess.printFocus()
	case "path":
		sess.printPath()
	case "lefts":
		sess.printNodes("lefts", sess.cursor.Lefts())
	case "rights":
		sess.printNodes("rights", sess.cursor.Rights())
	case "children":
		children, err := sess.cursor.Children()
		if err != nil {
			sess.printError(err)

			return
		}

		sess.printNodes("children", children)
	case "commit":
		sess.printCommit()
	case "down", "up", "left", "right", "leftmost", "rightmost", "root", "next", "prev", "remove":
		sess.move(parts[0])
	case "replace", "insert-left", "insert-right", "insert-child", "append-child":
		sess.edit(parts)
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])     //nolint:forbidigo // CLI user output
		fmt.Println("Type 'help' for available commands") //nolint:forbidigo // CLI user output
	}
}

// move executes a navigation command through the script dispatcher, so
// the interactive session and YAML scripts share one operation set.
func (sess *session) move(name string) {
	next, err := applyOp(sess.cursor, editOp{Op: name})
	if err != nil {
		sess.printError(err)

		return
	}

	sess.cursor = next
	sess.printFocus()
}

func (sess *session) edit(parts []string) {
	if len(parts) < minExploreArgs {
		fmt.Printf("Usage: %s <json>\n", parts[0]) //nolint:forbidigo // CLI user output

		return
	}

	value := strings.Join(parts[1:], " ")

	next, err := applyOp(sess.cursor, editOp{Op: parts[0], Value: value})
	if err != nil {
		sess.printError(err)

		return
	}

	sess.cursor = next
	sess.printFocus()
}

func (sess *session) printFocus() {
	marker := sess.focusTag.Sprint(describe(sess.cursor.Focus(), sess.maxWidth))

	end := ""
	if sess.cursor.IsEnd() {
		end = " [end of walk]"
	}

	fmt.Printf("focus: %s (depth %d)%s\n", marker, sess.cursor.Depth(), end) //nolint:forbidigo // CLI user output
}

func (sess *session) printPath() {
	path := sess.cursor.Path()
	if len(path) == 0 {
		fmt.Println("at root") //nolint:forbidigo // CLI user output

		return
	}

	for idx, ancestor := range path {
		fmt.Printf("%s%s\n", strings.Repeat("  ", idx), describe(ancestor, sess.maxWidth)) //nolint:forbidigo // CLI user output
	}
}

func (sess *session) printNodes(label string, nodes []*tree.Node) {
	fmt.Printf("%s (%d):\n", label, len(nodes)) //nolint:forbidigo // CLI user output

	for idx, node := range nodes {
		fmt.Printf("[%d] %s\n", idx+1, describe(node, sess.maxWidth)) //nolint:forbidigo // CLI user output
	}
}

func (sess *session) printCommit() {
	out, err := tree.ToJSON(sess.cursor.Root().Focus())
	if err != nil {
		sess.printError(err)

		return
	}

	fmt.Println(string(out)) //nolint:forbidigo // CLI user output
}

func (sess *session) printError(err error) {
	// Cursor boundary errors are expected during exploration; keep the
	// message short for them.
	boundary := errors.Is(err, zipper.ErrDownFromLeaf) ||
		errors.Is(err, zipper.ErrDownFromEmptyBranch) ||
		errors.Is(err, zipper.ErrUpFromRoot) ||
		errors.Is(err, zipper.ErrLeftOfLeftmost) ||
		errors.Is(err, zipper.ErrRightOfRightmost) ||
		errors.Is(err, zipper.ErrRemoveOfRoot)

	if boundary {
		fmt.Println(sess.errTag.Sprint(err.Error())) //nolint:forbidigo // CLI user output

		return
	}

	fmt.Println(sess.errTag.Sprintf("Error: %v", err)) //nolint:forbidigo // CLI user output
}

func printExploreHelp() {
	fmt.Println(`Available commands:
  focus                    - Show the focused node
  path                     - Show ancestors from root to parent
  lefts / rights           - Show siblings in document order
  children                 - Show children of the focus
  down / up / left / right - Move the cursor
  leftmost / rightmost     - Jump to the sibling extremes
  next / prev              - Depth-first walk, forward and back
  replace <json>           - Replace the focus
  insert-left <json>       - Insert a sibling before the focus
  insert-right <json>      - Insert a sibling after the focus
  insert-child <json>      - Insert a first child
  append-child <json>      - Append a last child
  remove                   - Remove the focus
  commit                   - Rebuild and print the whole document
  help                     - Show this help
  quit                     - Exit`) //nolint:forbidigo // CLI user output
}
