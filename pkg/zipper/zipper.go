// Package zipper implements a persistent tree cursor: a focused position
// inside an arbitrary tree plus enough context to reconstruct the whole
// tree after local edits. Every operation returns a new cursor value;
// cursors already handed to a caller are never altered by later
// operations on derived cursors.
package zipper

// crumb captures what is needed to return upward from a child and
// reconstruct its parent: the parent node as it was before the descent,
// and the siblings of the child descended into.
type crumb[N any] struct {
	focus N
	left  []N // Nearest sibling first.
	right []N // Document order.
}

// Cursor is a focused position inside a tree of N values.
//
// The sibling invariant holds at all times: left reversed, then the
// focus, then right, is the true sibling sequence at the focus depth in
// document order. The crumb stack is innermost-parent first; its length
// is the depth of the focus (the root has an empty stack).
type Cursor[N any] struct {
	adapter Adapter[N]
	focus   N
	left    []N // Nearest sibling first.
	right   []N // Document order.
	parents []crumb[N]
	atEnd   bool
}

// New returns a cursor focused on root. Any node may be a root, branch
// or leaf.
func New[N any](root N, adapter Adapter[N]) *Cursor[N] {
	return &Cursor[N]{
		adapter: adapter,
		focus:   root,
	}
}

// NewFunc returns a cursor focused on root with the three capabilities
// supplied as plain functions.
func NewFunc[N any](root N, isBranch func(N) bool, children func(N) []N, rebuild func(N, []N) N) *Cursor[N] {
	return New[N](root, FuncAdapter[N]{
		IsBranchFunc: isBranch,
		ChildrenFunc: children,
		RebuildFunc:  rebuild,
	})
}

// Focus returns the node currently in view.
func (cursor *Cursor[N]) Focus() N {
	return cursor.focus
}

// IsBranch reports whether the focus has or can have children.
func (cursor *Cursor[N]) IsBranch() bool {
	return cursor.adapter.IsBranch(cursor.focus)
}

// Children returns the ordered children of the focus.
// Fails with ErrChildrenOfLeaf when the focus is a leaf.
func (cursor *Cursor[N]) Children() ([]N, error) {
	if !cursor.IsBranch() {
		return nil, ErrChildrenOfLeaf
	}

	return cursor.adapter.Children(cursor.focus), nil
}

// Lefts returns the left siblings of the focus in document order.
func (cursor *Cursor[N]) Lefts() []N {
	if len(cursor.left) == 0 {
		return nil
	}

	out := make([]N, len(cursor.left))

	for idx := range cursor.left {
		out[len(out)-1-idx] = cursor.left[idx]
	}

	return out
}

// Rights returns the right siblings of the focus in document order.
func (cursor *Cursor[N]) Rights() []N {
	if len(cursor.right) == 0 {
		return nil
	}

	out := make([]N, len(cursor.right))
	copy(out, cursor.right)

	return out
}

// Path returns the ancestor chain from the root down to the immediate
// parent of the focus. Each element is the ancestor node as it was when
// the cursor descended through it. Empty at the root.
func (cursor *Cursor[N]) Path() []N {
	if len(cursor.parents) == 0 {
		return nil
	}

	out := make([]N, len(cursor.parents))

	for idx := range cursor.parents {
		out[len(out)-1-idx] = cursor.parents[idx].focus
	}

	return out
}

// Depth returns the depth of the focus; the root has depth 0.
func (cursor *Cursor[N]) Depth() int {
	return len(cursor.parents)
}

// IsEnd reports whether a depth-first walk has wrapped back to the root.
// The flag is set only by Next and cleared by any explicit navigation
// or edit.
func (cursor *Cursor[N]) IsEnd() bool {
	return cursor.atEnd
}

// RebuildNode exposes the bound rebuild capability directly. It reads
// and writes no cursor state.
func (cursor *Cursor[N]) RebuildNode(node N, children []N) N {
	return cursor.adapter.Rebuild(node, children)
}

// Down moves to the first child of the focus.
// Fails with ErrDownFromLeaf on a leaf and ErrDownFromEmptyBranch on a
// branch with no children.
func (cursor *Cursor[N]) Down() (*Cursor[N], error) {
	if !cursor.IsBranch() {
		return nil, ErrDownFromLeaf
	}

	children := cursor.adapter.Children(cursor.focus)
	if len(children) == 0 {
		return nil, ErrDownFromEmptyBranch
	}

	next := cursor.clone()
	next.parents = pushCrumb(crumb[N]{
		focus: cursor.focus,
		left:  cursor.left,
		right: cursor.right,
	}, cursor.parents)
	next.focus = children[0]
	next.left = nil
	next.right = children[1:]
	next.atEnd = false

	return next, nil
}

// Up moves to the parent of the focus, folding any edits made among the
// current siblings back into a rebuilt parent node. This is the only
// point where child-level edits become visible to ancestors.
// Fails with ErrUpFromRoot at the root.
func (cursor *Cursor[N]) Up() (*Cursor[N], error) {
	if len(cursor.parents) == 0 {
		return nil, ErrUpFromRoot
	}

	frame := cursor.parents[0]

	next := cursor.clone()
	next.focus = cursor.adapter.Rebuild(frame.focus, cursor.siblings())
	next.left = frame.left
	next.right = frame.right
	next.parents = cursor.parents[1:]
	next.atEnd = false

	return next, nil
}

// Left moves to the sibling immediately left of the focus.
// Fails with ErrLeftOfLeftmost at the leftmost sibling.
func (cursor *Cursor[N]) Left() (*Cursor[N], error) {
	if len(cursor.left) == 0 {
		return nil, ErrLeftOfLeftmost
	}

	next := cursor.clone()
	next.focus = cursor.left[0]
	next.left = cursor.left[1:]
	next.right = prepend(cursor.focus, cursor.right)
	next.atEnd = false

	return next, nil
}

// Right moves to the sibling immediately right of the focus.
// Fails with ErrRightOfRightmost at the rightmost sibling.
func (cursor *Cursor[N]) Right() (*Cursor[N], error) {
	if len(cursor.right) == 0 {
		return nil, ErrRightOfRightmost
	}

	next := cursor.clone()
	next.focus = cursor.right[0]
	next.left = prepend(cursor.focus, cursor.left)
	next.right = cursor.right[1:]
	next.atEnd = false

	return next, nil
}

// Leftmost moves to the leftmost sibling of the focus. A cursor already
// at the leftmost sibling is returned unchanged.
func (cursor *Cursor[N]) Leftmost() *Cursor[N] {
	current := cursor

	for {
		moved, err := current.Left()
		if err != nil {
			return current
		}

		current = moved
	}
}

// Rightmost moves to the rightmost sibling of the focus. A cursor
// already at the rightmost sibling is returned unchanged.
func (cursor *Cursor[N]) Rightmost() *Cursor[N] {
	current := cursor

	for {
		moved, err := current.Right()
		if err != nil {
			return current
		}

		current = moved
	}
}

// Root ascends to the root, folding all pending edits into the rebuilt
// tree, and returns a cursor focused on it. A no-op at the root.
func (cursor *Cursor[N]) Root() *Cursor[N] {
	current := cursor

	for {
		moved, err := current.Up()
		if err != nil {
			return current
		}

		current = moved
	}
}

// siblings reconstructs the full sibling sequence of the focus in
// document order: left reversed, then the focus, then right.
func (cursor *Cursor[N]) siblings() []N {
	out := make([]N, 0, len(cursor.left)+1+len(cursor.right))

	for idx := len(cursor.left) - 1; idx >= 0; idx-- {
		out = append(out, cursor.left[idx])
	}

	out = append(out, cursor.focus)

	return append(out, cursor.right...)
}

// clone returns a shallow copy of the cursor. Slices are shared; the
// engine never writes to a slice in place, so sharing tails between
// cursor generations is safe.
func (cursor *Cursor[N]) clone() *Cursor[N] {
	dup := *cursor

	return &dup
}

// prepend returns a fresh slice with head in front of tail. The input
// slice is left untouched.
func prepend[T any](head T, tail []T) []T {
	out := make([]T, 0, len(tail)+1)
	out = append(out, head)

	return append(out, tail...)
}

// pushCrumb returns a fresh crumb stack with frame on top.
func pushCrumb[N any](frame crumb[N], stack []crumb[N]) []crumb[N] {
	out := make([]crumb[N], 0, len(stack)+1)
	out = append(out, frame)

	return append(out, stack...)
}
