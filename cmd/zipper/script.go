package main

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
	"github.com/Sumatoshi-tech/zipper/pkg/zipper"
)

// Script errors.
var (
	ErrUnknownOp      = errors.New("unknown operation")
	ErrMissingValue   = errors.New("operation requires a value")
	ErrEmptyScript    = errors.New("script has no operations")
	ErrFindNoMatch    = errors.New("find matched no node")
	ErrMissingMatcher = errors.New("find requires kind or value")
)

// editScript is a YAML-described sequence of cursor operations.
type editScript struct {
	Ops []editOp `yaml:"ops"`
}

// editOp is one cursor operation. Value carries a JSON fragment for the
// edit operations; Kind and Value select the target for find.
type editOp struct {
	Op    string `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
}

// parseScript decodes a YAML edit script.
func parseScript(data []byte) (*editScript, error) {
	var script editScript

	err := yaml.Unmarshal(data, &script)
	if err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	if len(script.Ops) == 0 {
		return nil, ErrEmptyScript
	}

	return &script, nil
}

// applyScript runs every operation of the script against the cursor and
// returns the final cursor. Operation errors abort the script.
func applyScript(cursor *zipper.Cursor[*tree.Node], script *editScript) (*zipper.Cursor[*tree.Node], error) {
	current := cursor

	for idx, op := range script.Ops {
		next, err := applyOp(current, op)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", idx+1, op.Op, err)
		}

		current = next
	}

	return current, nil
}

//nolint:cyclop // One case per cursor operation; splitting would obscure the dispatch.
func applyOp(cursor *zipper.Cursor[*tree.Node], op editOp) (*zipper.Cursor[*tree.Node], error) {
	switch op.Op {
	case "down":
		return cursor.Down()
	case "up":
		return cursor.Up()
	case "left":
		return cursor.Left()
	case "right":
		return cursor.Right()
	case "leftmost":
		return cursor.Leftmost(), nil
	case "rightmost":
		return cursor.Rightmost(), nil
	case "root":
		return cursor.Root(), nil
	case "next":
		return cursor.Next(), nil
	case "prev":
		return cursor.Prev()
	case "find":
		return applyFind(cursor, op)
	case "replace":
		return applyNodeOp(cursor, op, func(c *zipper.Cursor[*tree.Node], n *tree.Node) (*zipper.Cursor[*tree.Node], error) {
			return c.Replace(n), nil
		})
	case "insert-left":
		return applyNodeOp(cursor, op, (*zipper.Cursor[*tree.Node]).InsertLeft)
	case "insert-right":
		return applyNodeOp(cursor, op, (*zipper.Cursor[*tree.Node]).InsertRight)
	case "insert-child":
		return applyNodeOp(cursor, op, (*zipper.Cursor[*tree.Node]).InsertChild)
	case "append-child":
		return applyNodeOp(cursor, op, (*zipper.Cursor[*tree.Node]).AppendChild)
	case "remove":
		return cursor.Remove()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
}

func applyNodeOp(
	cursor *zipper.Cursor[*tree.Node],
	op editOp,
	apply func(*zipper.Cursor[*tree.Node], *tree.Node) (*zipper.Cursor[*tree.Node], error),
) (*zipper.Cursor[*tree.Node], error) {
	if op.Value == "" {
		return nil, ErrMissingValue
	}

	node, err := tree.FromJSON([]byte(op.Value))
	if err != nil {
		return nil, err
	}

	return apply(cursor, node)
}

func applyFind(cursor *zipper.Cursor[*tree.Node], op editOp) (*zipper.Cursor[*tree.Node], error) {
	if op.Kind == "" && op.Value == "" {
		return nil, ErrMissingMatcher
	}

	found, ok := cursor.Find(func(n *tree.Node) bool {
		if op.Kind != "" && n.Kind != op.Kind {
			return false
		}

		return op.Value == "" || n.Value == op.Value
	})
	if !ok {
		return nil, ErrFindNoMatch
	}

	return found, nil
}
