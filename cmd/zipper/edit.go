package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
)

func editCmd() *cobra.Command {
	var (
		scriptPath string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Apply a YAML script of cursor operations to a JSON document",
		Long: `Edit runs a sequence of cursor operations against the document
and prints the rebuilt JSON. The script is YAML:

  ops:
    - op: find
      kind: Number
      value: "3"
    - op: replace
      value: "99"
    - op: root

Navigation ops: down, up, left, right, leftmost, rightmost, root, next,
prev, find. Edit ops: replace, insert-left, insert-right, insert-child,
append-child, remove. The cursor ascends to the root automatically
before output, folding in any pending edits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEdit(args[0], scriptPath, outPath)
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "", "YAML script of operations (required)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write result to file instead of stdout")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func runEdit(path, scriptPath, outPath string) error {
	cursor, _, err := loadCursor(path)
	if err != nil {
		return err
	}

	scriptData, resolvedScript, err := safeReadFile(scriptPath)
	if err != nil {
		return err
	}

	script, err := parseScript(scriptData)
	if err != nil {
		return fmt.Errorf("script %s: %w", resolvedScript, err)
	}

	final, err := applyScript(cursor, script)
	if err != nil {
		return err
	}

	out, err := tree.ToJSON(final.Root().Focus())
	if err != nil {
		return err
	}

	if outPath != "" {
		writeErr := os.WriteFile(outPath, append(out, '\n'), 0o600)
		if writeErr != nil {
			return fmt.Errorf("write %s: %w", outPath, writeErr)
		}

		return nil
	}

	fmt.Fprintln(os.Stdout, string(out))

	return nil
}
