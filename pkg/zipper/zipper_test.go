package zipper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
	"github.com/Sumatoshi-tech/zipper/pkg/zipper"
)

// nestedDoc is the nested-list document used throughout:
//
//	[1, 2, [3, [4, 5], 6], [], 7]
const nestedDoc = `[1,2,[3,[4,5],6],[],7]`

func cursorOver(t *testing.T, doc string) *zipper.Cursor[*tree.Node] {
	t.Helper()

	root, err := tree.FromJSON([]byte(doc))
	require.NoError(t, err)

	return zipper.New[*tree.Node](root, tree.Adapter{})
}

func renderFocus(t *testing.T, cursor *zipper.Cursor[*tree.Node]) string {
	t.Helper()

	out, err := tree.ToJSON(cursor.Focus())
	require.NoError(t, err)

	return string(out)
}

func renderAll(t *testing.T, nodes []*tree.Node) []string {
	t.Helper()

	if nodes == nil {
		return nil
	}

	out := make([]string, len(nodes))

	for idx, node := range nodes {
		encoded, err := tree.ToJSON(node)
		require.NoError(t, err)

		out[idx] = string(encoded)
	}

	return out
}

func TestNew_RootCursor(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	assert.Equal(t, nestedDoc, renderFocus(t, cursor))
	assert.True(t, cursor.IsBranch())
	assert.Zero(t, cursor.Depth())
	assert.Nil(t, cursor.Lefts())
	assert.Nil(t, cursor.Rights())
	assert.Nil(t, cursor.Path())
	assert.False(t, cursor.IsEnd())
}

func TestDown_FirstChild(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	assert.Equal(t, "1", renderFocus(t, down))
	assert.Equal(t, 1, down.Depth())
	assert.Nil(t, down.Lefts())
	assert.Equal(t, []string{"2", "[3,[4,5],6]", "[]", "7"}, renderAll(t, down.Rights()))
}

func TestDown_Errors(t *testing.T) {
	t.Parallel()

	leaf := cursorOver(t, `42`)

	_, err := leaf.Down()
	assert.ErrorIs(t, err, zipper.ErrDownFromLeaf)

	empty := cursorOver(t, `[]`)

	_, err = empty.Down()
	assert.ErrorIs(t, err, zipper.ErrDownFromEmptyBranch)
}

func TestUp_AtRoot(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	_, err := cursor.Up()
	assert.ErrorIs(t, err, zipper.ErrUpFromRoot)
}

func TestLeftRight_Boundaries(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	_, err = down.Left()
	assert.ErrorIs(t, err, zipper.ErrLeftOfLeftmost)

	last := down.Rightmost()

	_, err = last.Right()
	assert.ErrorIs(t, err, zipper.ErrRightOfRightmost)
}

func TestRight_ThenLeft_ReturnsToSameNode(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	right, err := down.Right()
	require.NoError(t, err)
	assert.Equal(t, "2", renderFocus(t, right))

	back, err := right.Left()
	require.NoError(t, err)
	assert.Equal(t, "1", renderFocus(t, back))
}

func TestSiblingInvariant(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	siblings := []string{"1", "2", "[3,[4,5],6]", "[]", "7"}

	current := down
	for step := 0; ; step++ {
		var order []string
		order = append(order, renderAll(t, current.Lefts())...)
		order = append(order, renderFocus(t, current))
		order = append(order, renderAll(t, current.Rights())...)

		assert.Equal(t, siblings, order, "sibling invariant at step %d", step)
		assert.Equal(t, siblings[step], renderFocus(t, current))

		next, err := current.Right()
		if err != nil {
			require.ErrorIs(t, err, zipper.ErrRightOfRightmost)

			break
		}

		current = next
	}
}

func TestLeftmostRightmost(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	last := down.Rightmost()
	assert.Equal(t, "7", renderFocus(t, last))

	// Already at an extreme: returned unchanged.
	assert.Equal(t, "7", renderFocus(t, last.Rightmost()))

	first := last.Leftmost()
	assert.Equal(t, "1", renderFocus(t, first))
	assert.Equal(t, "1", renderFocus(t, first.Leftmost()))
}

func TestPath_RootToParent(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	// Descend to the 4 inside [4,5].
	found, ok := cursor.Find(func(n *tree.Node) bool {
		return n.Kind == tree.KindNumber && n.Value == "4"
	})
	require.True(t, ok)

	path := renderAll(t, found.Path())
	assert.Equal(t, []string{nestedDoc, "[3,[4,5],6]", "[4,5]"}, path)
	assert.Equal(t, 3, found.Depth())
}

func TestChildren(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, `[1,2]`)

	children, err := cursor.Children()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, renderAll(t, children))

	leaf := cursorOver(t, `"x"`)

	_, err = leaf.Children()
	assert.ErrorIs(t, err, zipper.ErrChildrenOfLeaf)
}

func TestRebuildNode_Passthrough(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, `[1]`)

	rebuilt := cursor.RebuildNode(cursor.Focus(), []*tree.Node{
		tree.NewLeaf(tree.KindNumber, "9"),
	})

	out, err := tree.ToJSON(rebuilt)
	require.NoError(t, err)
	assert.Equal(t, "[9]", string(out))

	// The cursor itself is untouched.
	assert.Equal(t, "[1]", renderFocus(t, cursor))
}

func TestRoundTripIdentity(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	right, err := down.Right()
	require.NoError(t, err)

	right, err = right.Right()
	require.NoError(t, err)

	inner, err := right.Down()
	require.NoError(t, err)

	back := inner.Root()
	assert.Equal(t, nestedDoc, renderFocus(t, back))
	assert.True(t, cursor.Focus().Equal(back.Focus()))
}

func TestPersistence_DerivedCursorsDoNotInterfere(t *testing.T) {
	t.Parallel()

	cursor := cursorOver(t, nestedDoc)

	down, err := cursor.Down()
	require.NoError(t, err)

	edited := down.Replace(tree.NewLeaf(tree.KindNumber, "99"))

	// The pre-edit cursors still see the original values.
	assert.Equal(t, "1", renderFocus(t, down))
	assert.Equal(t, nestedDoc, renderFocus(t, cursor))

	// Both branches of the edit history rebuild independently.
	assert.Equal(t, `[99,2,[3,[4,5],6],[],7]`, renderFocus(t, edited.Root()))
	assert.Equal(t, nestedDoc, renderFocus(t, down.Root()))
}
