package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/zipper/pkg/config"
	"github.com/Sumatoshi-tech/zipper/pkg/tree"
	"github.com/Sumatoshi-tech/zipper/pkg/zipper"
)

func walkCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "walk [file]",
		Short: "Print every node of a JSON document in pre-order",
		Long: `Walk traverses the document depth-first through the cursor,
visiting each node exactly once in pre-order.

Examples:
  zipper walk data.json
  zipper walk data.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runWalk(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, json or plain (default from config)")

	return cmd
}

// walkRow is one visited node in the pre-order traversal.
type walkRow struct {
	Kind  string `json:"kind"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Index int    `json:"index"`
	Depth int    `json:"depth"`
}

func runWalk(path, format string) error {
	cursor, _, err := loadCursor(path)
	if err != nil {
		return err
	}

	rows := collectWalkRows(cursor)

	if format == "" {
		format = cfg.Output.Format
	}

	switch format {
	case config.FormatJSON:
		return printWalkJSON(rows)
	case config.FormatPlain:
		printWalkPlain(rows)

		return nil
	case config.FormatTable:
		printWalkTable(rows)

		return nil
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// collectWalkRows visits every node from the cursor onward, in pre-order,
// until the walk wraps back to the root.
func collectWalkRows(cursor *zipper.Cursor[*tree.Node]) []walkRow {
	var rows []walkRow

	for current := cursor; !current.IsEnd(); current = current.Next() {
		focus := current.Focus()

		value := focus.Value
		if focus.IsBranch() {
			value = ""
		}

		rows = append(rows, walkRow{
			Index: len(rows),
			Depth: current.Depth(),
			Kind:  focus.Kind,
			Key:   focus.Prop(tree.PropKey),
			Value: value,
		})
	}

	return rows
}

func printWalkJSON(rows []walkRow) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(rows)
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	return nil
}

func printWalkPlain(rows []walkRow) {
	for _, row := range rows {
		line := strings.Repeat("  ", row.Depth) + row.Kind

		if row.Key != "" {
			line += fmt.Sprintf(" %q", row.Key)
		}

		if row.Value != "" {
			line += " " + truncate(row.Value, cfg.Output.MaxValueWidth)
		}

		fmt.Fprintln(os.Stdout, line)
	}
}

func printWalkTable(rows []walkRow) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.AppendHeader(table.Row{"#", "Depth", "Kind", "Key", "Value"})

	for _, row := range rows {
		writer.AppendRow(table.Row{
			row.Index,
			row.Depth,
			row.Kind,
			row.Key,
			truncate(row.Value, cfg.Output.MaxValueWidth),
		})
	}

	writer.Render()
}
