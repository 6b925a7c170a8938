package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/zipper/pkg/tree"
)

func TestCollectWalkRows(t *testing.T) {
	t.Parallel()

	cursor := testCursor(t, `{"a":[1,2],"b":true}`)

	rows := collectWalkRows(cursor)
	require.Len(t, rows, 5)

	assert.Equal(t, walkRow{Index: 0, Depth: 0, Kind: tree.KindObject}, rows[0])
	assert.Equal(t, walkRow{Index: 1, Depth: 1, Kind: tree.KindArray, Key: "a"}, rows[1])
	assert.Equal(t, walkRow{Index: 2, Depth: 2, Kind: tree.KindNumber, Value: "1"}, rows[2])
	assert.Equal(t, walkRow{Index: 3, Depth: 2, Kind: tree.KindNumber, Value: "2"}, rows[3])
	assert.Equal(t, walkRow{Index: 4, Depth: 1, Kind: tree.KindBool, Key: "b", Value: "true"}, rows[4])
}

func TestCollectWalkRows_ScalarRoot(t *testing.T) {
	t.Parallel()

	rows := collectWalkRows(testCursor(t, `null`))

	require.Len(t, rows, 1)
	assert.Equal(t, tree.KindNull, rows[0].Kind)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		maxWidth int
		want     string
	}{
		{"short value untouched", "abc", 10, "abc"},
		{"exact width untouched", "abcde", 5, "abcde"},
		{"long value gets ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny width hard cut", "abcdefgh", 2, "ab"},
		{"zero width disables truncation", "abcdefgh", 0, "abcdefgh"},
		{"multibyte runes", "日本語テキスト", 5, "日本..."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, truncate(tt.value, tt.maxWidth))
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	leaf := tree.NewLeaf(tree.KindString, "hello")
	assert.Equal(t, "String hello", describe(leaf, 48))

	keyed := tree.NewLeaf(tree.KindNumber, "1").WithProp(tree.PropKey, "count")
	assert.Equal(t, `Number "count" 1`, describe(keyed, 48))

	branch := tree.NewBranch(tree.KindArray, leaf)
	assert.Equal(t, "Array (1 children)", describe(branch, 48))
}
