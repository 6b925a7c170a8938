package zipper

// Edit replaces the focus with fn(focus). Navigation state is unchanged;
// the edit becomes visible to ancestors only when the cursor ascends.
func (cursor *Cursor[N]) Edit(fn func(N) N) *Cursor[N] {
	next := cursor.clone()
	next.focus = fn(cursor.focus)
	next.atEnd = false

	return next
}

// Replace replaces the focus with node.
func (cursor *Cursor[N]) Replace(node N) *Cursor[N] {
	return cursor.Edit(func(N) N { return node })
}

// InsertLeft inserts node as the sibling immediately left of the focus.
// The focus is unchanged. Fails with ErrInsertLeftOfRoot at the root,
// which has no siblings.
func (cursor *Cursor[N]) InsertLeft(node N) (*Cursor[N], error) {
	if len(cursor.parents) == 0 {
		return nil, ErrInsertLeftOfRoot
	}

	next := cursor.clone()
	next.left = prepend(node, cursor.left)
	next.atEnd = false

	return next, nil
}

// InsertRight inserts node as the sibling immediately right of the
// focus. The focus is unchanged. Fails with ErrInsertRightOfRoot at the
// root.
func (cursor *Cursor[N]) InsertRight(node N) (*Cursor[N], error) {
	if len(cursor.parents) == 0 {
		return nil, ErrInsertRightOfRoot
	}

	next := cursor.clone()
	next.right = prepend(node, cursor.right)
	next.atEnd = false

	return next, nil
}

// InsertChild inserts node as the first child of the focus, rebuilding
// the focus in place. Fails with ErrInsertChildOfLeaf on a leaf.
func (cursor *Cursor[N]) InsertChild(node N) (*Cursor[N], error) {
	if !cursor.IsBranch() {
		return nil, ErrInsertChildOfLeaf
	}

	children := prepend(node, cursor.adapter.Children(cursor.focus))

	next := cursor.clone()
	next.focus = cursor.adapter.Rebuild(cursor.focus, children)
	next.atEnd = false

	return next, nil
}

// AppendChild appends node as the last child of the focus, rebuilding
// the focus in place. Fails with ErrAppendChildOfLeaf on a leaf.
func (cursor *Cursor[N]) AppendChild(node N) (*Cursor[N], error) {
	if !cursor.IsBranch() {
		return nil, ErrAppendChildOfLeaf
	}

	existing := cursor.adapter.Children(cursor.focus)
	children := make([]N, 0, len(existing)+1)
	children = append(children, existing...)
	children = append(children, node)

	next := cursor.clone()
	next.focus = cursor.adapter.Rebuild(cursor.focus, children)
	next.atEnd = false

	return next, nil
}

// Remove removes the focus from the tree and moves to the node a Prev
// call would have landed on: the immediate left sibling when there is
// one, otherwise the rebuilt parent. Fails with ErrRemoveOfRoot at the
// root.
func (cursor *Cursor[N]) Remove() (*Cursor[N], error) {
	if len(cursor.left) > 0 {
		next := cursor.clone()
		next.focus = cursor.left[0]
		next.left = cursor.left[1:]
		next.atEnd = false

		return next, nil
	}

	if len(cursor.parents) == 0 {
		return nil, ErrRemoveOfRoot
	}

	// No left sibling: the removed node was the first child, so the
	// parent's remaining children are exactly the right siblings.
	frame := cursor.parents[0]

	next := cursor.clone()
	next.focus = cursor.adapter.Rebuild(frame.focus, cursor.right)
	next.left = frame.left
	next.right = frame.right
	next.parents = cursor.parents[1:]
	next.atEnd = false

	return next, nil
}
