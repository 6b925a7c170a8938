package zipper

// Next moves to the next node in pre-order depth-first order: the first
// child if there is one, else the right sibling, else the right sibling
// of the nearest ancestor that has one. When the walk is exhausted the
// cursor wraps back to the (rebuilt) root with the end flag set; from
// that state Next keeps returning the same cursor.
func (cursor *Cursor[N]) Next() *Cursor[N] {
	if cursor.atEnd {
		return cursor
	}

	if down, err := cursor.Down(); err == nil {
		return down
	}

	if right, err := cursor.Right(); err == nil {
		return right
	}

	current := cursor

	for {
		up, err := current.Up()
		if err != nil {
			end := current.clone()
			end.atEnd = true

			return end
		}

		if right, err := up.Right(); err == nil {
			return right
		}

		current = up
	}
}

// Prev moves to the previous node in pre-order depth-first order: the
// deepest rightmost descendant of the left sibling if there is one, else
// the parent. A cursor with the end flag set is returned unchanged.
// Fails with ErrUpFromRoot at the root of a fresh walk, which has no
// predecessor.
func (cursor *Cursor[N]) Prev() (*Cursor[N], error) {
	if cursor.atEnd {
		return cursor, nil
	}

	left, err := cursor.Left()
	if err != nil {
		return cursor.Up()
	}

	current := left

	for {
		if !current.IsBranch() {
			return current, nil
		}

		down, err := current.Down()
		if err != nil {
			// Empty branch: nothing deeper on this path.
			return current, nil
		}

		current = down.Rightmost()
	}
}

// Find walks forward from the cursor in pre-order, returning the first
// cursor (the receiver included) whose focus satisfies pred. The second
// result reports whether a match was found before the walk ended.
func (cursor *Cursor[N]) Find(pred func(N) bool) (*Cursor[N], bool) {
	for current := cursor; !current.atEnd; current = current.Next() {
		if pred(current.focus) {
			return current, true
		}
	}

	return cursor, false
}
