package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Show node statistics for a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}

	return cmd
}

func runStats(path string) error {
	cursor, inputSize, err := loadCursor(path)
	if err != nil {
		return err
	}

	rows := collectWalkRows(cursor)

	counts := make(map[string]int)
	maxDepth := 0

	for _, row := range rows {
		counts[row.Kind]++

		if row.Depth > maxDepth {
			maxDepth = row.Depth
		}
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)

	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.AppendHeader(table.Row{"Kind", "Count"})

	for _, kind := range kinds {
		writer.AppendRow(table.Row{kind, counts[kind]})
	}

	writer.AppendFooter(table.Row{"Total", humanize.Comma(int64(len(rows)))})
	writer.Render()

	fmt.Fprintf(os.Stdout, "Max depth: %d, input size: %s\n",
		maxDepth, humanize.Bytes(uint64(inputSize)))

	return nil
}
