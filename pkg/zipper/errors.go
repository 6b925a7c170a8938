package zipper

import "errors"

// Vertical navigation errors.
var (
	// ErrDownFromLeaf indicates a descent was attempted from a leaf node.
	ErrDownFromLeaf = errors.New("cannot descend: focus is a leaf")

	// ErrDownFromEmptyBranch indicates a descent was attempted from a branch with no children.
	ErrDownFromEmptyBranch = errors.New("cannot descend: branch has no children")

	// ErrUpFromRoot indicates an ascent was attempted from the root.
	ErrUpFromRoot = errors.New("cannot ascend: focus is the root")
)

// Horizontal navigation errors.
var (
	// ErrLeftOfLeftmost indicates the focus has no left sibling.
	ErrLeftOfLeftmost = errors.New("no left sibling")

	// ErrRightOfRightmost indicates the focus has no right sibling.
	ErrRightOfRightmost = errors.New("no right sibling")
)

// Query errors.
var (
	// ErrChildrenOfLeaf indicates children were requested from a leaf node.
	ErrChildrenOfLeaf = errors.New("leaf has no children")
)

// Edit errors.
var (
	// ErrInsertLeftOfRoot indicates a sibling insertion to the left of the root.
	ErrInsertLeftOfRoot = errors.New("cannot insert sibling left of the root")

	// ErrInsertRightOfRoot indicates a sibling insertion to the right of the root.
	ErrInsertRightOfRoot = errors.New("cannot insert sibling right of the root")

	// ErrAppendChildOfLeaf indicates a child append on a leaf node.
	ErrAppendChildOfLeaf = errors.New("cannot append child to a leaf")

	// ErrInsertChildOfLeaf indicates a child insertion on a leaf node.
	ErrInsertChildOfLeaf = errors.New("cannot insert child into a leaf")

	// ErrRemoveOfRoot indicates a removal of the root node.
	ErrRemoveOfRoot = errors.New("cannot remove the root")
)
