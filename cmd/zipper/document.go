package main

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
	"github.com/Sumatoshi-tech/zipper/pkg/zipper"
)

// loadCursor reads a JSON document and returns a cursor focused on its
// root, along with the raw input size in bytes.
func loadCursor(path string) (*zipper.Cursor[*tree.Node], int, error) {
	content, resolvedPath, err := safeReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	root, err := tree.FromJSON(content)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", resolvedPath, err)
	}

	slog.Debug("loaded document",
		"path", resolvedPath,
		"size", humanize.Bytes(uint64(len(content))),
		"nodes", root.Count(),
	)

	return zipper.New[*tree.Node](root, tree.Adapter{}), len(content), nil
}

// describe renders a node for terminal output: its kind, its key when it
// is an object member, and its value or child count.
func describe(node *tree.Node, maxWidth int) string {
	out := node.Kind

	if key := node.Prop(tree.PropKey); key != "" {
		out += fmt.Sprintf(" %q", key)
	}

	if node.IsBranch() {
		return fmt.Sprintf("%s (%d children)", out, len(node.Children))
	}

	return fmt.Sprintf("%s %s", out, truncate(node.Value, maxWidth))
}

// truncate shortens a value to at most maxWidth runes, marking the cut
// with an ellipsis.
func truncate(value string, maxWidth int) string {
	runes := []rune(value)
	if maxWidth <= 0 || len(runes) <= maxWidth {
		return value
	}

	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}

	return string(runes[:maxWidth-3]) + "..."
}
