package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
)

func sampleTree() *tree.Node {
	return tree.NewBranch(tree.KindArray,
		tree.NewLeaf(tree.KindNumber, "1"),
		tree.NewBranch(tree.KindArray,
			tree.NewLeaf(tree.KindNumber, "2"),
			tree.NewLeaf(tree.KindNumber, "3"),
		),
		tree.NewLeaf(tree.KindString, "x"),
	)
}

func TestNewBranch_EmptyIsStillBranch(t *testing.T) {
	t.Parallel()

	empty := tree.NewBranch(tree.KindArray)

	assert.True(t, empty.IsBranch())
	assert.Empty(t, empty.Children)
}

func TestNewLeaf(t *testing.T) {
	t.Parallel()

	leaf := tree.NewLeaf(tree.KindString, "hello")

	assert.False(t, leaf.IsBranch())
	assert.Equal(t, "hello", leaf.Value)
}

func TestWithProp(t *testing.T) {
	t.Parallel()

	node := tree.NewLeaf(tree.KindString, "v").WithProp(tree.PropKey, "name")

	assert.Equal(t, "name", node.Prop(tree.PropKey))
	assert.Empty(t, node.Prop("missing"))
}

func TestClone_IndependentProps(t *testing.T) {
	t.Parallel()

	original := tree.NewLeaf(tree.KindString, "v").WithProp(tree.PropKey, "a")
	dup := original.Clone()

	dup.WithProp(tree.PropKey, "b")

	assert.Equal(t, "a", original.Prop(tree.PropKey))
	assert.Equal(t, "b", dup.Prop(tree.PropKey))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		a     *tree.Node
		b     *tree.Node
		equal bool
	}{
		{"identical trees", sampleTree(), sampleTree(), true},
		{"different value", tree.NewLeaf(tree.KindNumber, "1"), tree.NewLeaf(tree.KindNumber, "2"), false},
		{"different kind", tree.NewLeaf(tree.KindNumber, "1"), tree.NewLeaf(tree.KindString, "1"), false},
		{"leaf vs empty branch", tree.NewLeaf(tree.KindArray, ""), tree.NewBranch(tree.KindArray), false},
		{
			"different props",
			tree.NewLeaf(tree.KindString, "v").WithProp(tree.PropKey, "a"),
			tree.NewLeaf(tree.KindString, "v").WithProp(tree.PropKey, "b"),
			false,
		},
		{
			"different child count",
			tree.NewBranch(tree.KindArray, tree.NewLeaf(tree.KindNumber, "1")),
			tree.NewBranch(tree.KindArray),
			false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	var visited []string

	sampleTree().Walk(func(n *tree.Node) bool {
		visited = append(visited, n.Kind+":"+n.Value)

		return true
	})

	expected := []string{
		"Array:", "Number:1", "Array:", "Number:2", "Number:3", "String:x",
	}
	assert.Equal(t, expected, visited)
}

func TestWalk_Prune(t *testing.T) {
	t.Parallel()

	var visited []string

	sampleTree().Walk(func(n *tree.Node) bool {
		visited = append(visited, n.Kind+":"+n.Value)

		// Skip the inner array's children.
		return n.Value != "" || len(visited) == 1
	})

	expected := []string{"Array:", "Number:1", "Array:", "String:x"}
	assert.Equal(t, expected, visited)
}

func TestFind(t *testing.T) {
	t.Parallel()

	numbers := sampleTree().Find(func(n *tree.Node) bool {
		return n.Kind == tree.KindNumber
	})

	require.Len(t, numbers, 3)
	assert.Equal(t, "1", numbers[0].Value)
	assert.Equal(t, "2", numbers[1].Value)
	assert.Equal(t, "3", numbers[2].Value)
}

func TestCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, sampleTree().Count())
	assert.Equal(t, 1, tree.NewLeaf(tree.KindNull, "null").Count())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Number(1)", tree.NewLeaf(tree.KindNumber, "1").String())
	assert.Equal(t, "Array{3}", sampleTree().String())
	assert.Equal(
		t,
		"String(v)[key=name]",
		tree.NewLeaf(tree.KindString, "v").WithProp(tree.PropKey, "name").String(),
	)

	var nilNode *tree.Node

	assert.Equal(t, "nil", nilNode.String())
}
