package tree

import "github.com/Sumatoshi-tech/zipper/pkg/zipper"

// Adapter implements zipper.Adapter[*Node] with copy-on-write rebuilds:
// Rebuild clones the node and swaps in the new child sequence, so nodes
// already referenced by earlier cursors are never altered.
type Adapter struct{}

var _ zipper.Adapter[*Node] = Adapter{}

// IsBranch reports whether n is a branch node.
func (Adapter) IsBranch(n *Node) bool {
	return n.IsBranch()
}

// Children returns the ordered children of a branch node.
func (Adapter) Children(n *Node) []*Node {
	return n.Children
}

// Rebuild returns a copy of n with its children replaced. Branch-ness is
// preserved: rebuilding a branch with no children yields an empty
// branch, not a leaf.
func (Adapter) Rebuild(n *Node, children []*Node) *Node {
	if children == nil && n.IsBranch() {
		children = []*Node{}
	}

	dup := n.Clone()
	dup.Children = children

	return dup
}
