// Package tree provides a concrete labeled ordered tree and the cursor
// adapter that lets pkg/zipper navigate and edit it.
package tree

import (
	"fmt"
	"maps"
	"strings"
)

// Node kind constants for trees decoded from JSON documents.
const (
	KindObject = "Object"
	KindArray  = "Array"
	KindString = "String"
	KindNumber = "Number"
	KindBool   = "Bool"
	KindNull   = "Null"
)

// PropKey is the property under which an object member's key is stored
// on the member node.
const PropKey = "key"

// Node is a labeled ordered tree node.
//
// A nil Children slice marks a leaf; a non-nil (possibly empty) slice
// marks a branch. The distinction matters to the cursor: descending into
// a leaf and descending into an empty branch are different failures.
type Node struct {
	Kind     string
	Value    string
	Props    map[string]string
	Children []*Node
}

// NewBranch creates a branch node of the given kind. The node is a
// branch even when no children are supplied.
func NewBranch(kind string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}

	return &Node{Kind: kind, Children: children}
}

// NewLeaf creates a leaf node of the given kind and value.
func NewLeaf(kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

// WithProp sets a property on the node and returns it, for fluent
// construction of fresh nodes.
func (targetNode *Node) WithProp(key, value string) *Node {
	if targetNode.Props == nil {
		targetNode.Props = make(map[string]string, 1)
	}

	targetNode.Props[key] = value

	return targetNode
}

// Prop returns the value of a property, or "" when unset.
func (targetNode *Node) Prop(key string) string {
	return targetNode.Props[key]
}

// IsBranch reports whether the node is a branch.
func (targetNode *Node) IsBranch() bool {
	return targetNode.Children != nil
}

// Clone returns a shallow copy of the node: kind, value and properties
// are copied, the children slice is shared. Persistent rebuilds rely on
// this to avoid mutating nodes already referenced elsewhere.
func (targetNode *Node) Clone() *Node {
	dup := *targetNode

	if targetNode.Props != nil {
		dup.Props = maps.Clone(targetNode.Props)
	}

	return &dup
}

// Equal reports structural equality: kind, value, properties and the
// full child trees must match.
func (targetNode *Node) Equal(other *Node) bool {
	if targetNode == nil || other == nil {
		return targetNode == other
	}

	if targetNode.Kind != other.Kind || targetNode.Value != other.Value {
		return false
	}

	if !maps.Equal(targetNode.Props, other.Props) {
		return false
	}

	if targetNode.IsBranch() != other.IsBranch() {
		return false
	}

	if len(targetNode.Children) != len(other.Children) {
		return false
	}

	for idx := range targetNode.Children {
		if !targetNode.Children[idx].Equal(other.Children[idx]) {
			return false
		}
	}

	return true
}

// Walk visits the tree in pre-order. Returning false from fn prunes the
// subtree below the visited node.
func (targetNode *Node) Walk(fn func(*Node) bool) {
	if targetNode == nil {
		return
	}

	stack := []*Node{targetNode}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(curr) {
			continue
		}

		for idx := len(curr.Children) - 1; idx >= 0; idx-- {
			stack = append(stack, curr.Children[idx])
		}
	}
}

// Find returns all nodes in the tree (the root included) for which
// predicate reports true, in pre-order.
func (targetNode *Node) Find(predicate func(*Node) bool) []*Node {
	var result []*Node

	targetNode.Walk(func(curr *Node) bool {
		if predicate(curr) {
			result = append(result, curr)
		}

		return true
	})

	return result
}

// Count returns the number of nodes in the tree.
func (targetNode *Node) Count() int {
	total := 0

	targetNode.Walk(func(*Node) bool {
		total++

		return true
	})

	return total
}

// String returns a compact single-line representation of the node.
func (targetNode *Node) String() string {
	if targetNode == nil {
		return "nil"
	}

	var buf strings.Builder

	buf.WriteString(targetNode.Kind)

	if targetNode.Value != "" {
		fmt.Fprintf(&buf, "(%s)", targetNode.Value)
	}

	if key := targetNode.Prop(PropKey); key != "" {
		fmt.Fprintf(&buf, "[key=%s]", key)
	}

	if targetNode.IsBranch() {
		fmt.Fprintf(&buf, "{%d}", len(targetNode.Children))
	}

	return buf.String()
}
