package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arr-utils/collections"
	"github.com/hasbyte1/go-arr-utils/tree"
)

func sampleRecords() []map[string]any {
	return []map[string]any{
		{"id": 1, "parent_id": nil, "name": "root1"},
		{"id": 11, "parent_id": 1, "name": "child11"},
		{"id": 2, "parent_id": nil, "name": "root2"},
		{"id": 22, "parent_id": 2, "name": "child22"},
		{"id": 222, "parent_id": 22, "name": "child222"},
		{"id": 33, "parent_id": 3, "name": "orphan"},
		{"id": 333, "parent_id": 33, "name": "orphan_child"},
	}
}

func mustNode(t *testing.T, tr *tree.Tree, id any) *tree.Node {
	t.Helper()
	n, ok := tr.Node(id)
	require.Truef(t, ok, "node %v not found", id)
	return n
}

func TestBuild(t *testing.T) {
	tr, err := tree.Build(sampleRecords())
	require.NoError(t, err)

	assert.Equal(t, []any{1, 11, 2, 22, 222, 33, 333}, tr.All.Keys())
	assert.Equal(t, []any{"root1", "root2"}, tr.Roots.Keys())
	assert.Equal(t, []any{"orphan"}, tr.Orphans.Keys())

	root1 := mustNode(t, tr, 1)
	require.NotNil(t, root1.Children())
	assert.Equal(t, []any{"child11"}, root1.Children().Keys())

	child22 := mustNode(t, tr, 22)
	assert.Equal(t, []any{"child222"}, child22.Children().Keys())

	orphan := mustNode(t, tr, 33)
	assert.Equal(t, []any{"orphan_child"}, orphan.Children().Keys())

	assert.Nil(t, mustNode(t, tr, 222).Children())

	parents := tr.Structure.Values()
	assert.Equal(t, []any{nil, 1, nil, 2, 22, 3, 33}, parents)
}

func TestBuildSharesNodes(t *testing.T) {
	tr, err := tree.Build(sampleRecords())
	require.NoError(t, err)

	fromAll := mustNode(t, tr, 11)
	root, _ := tr.Roots.Get("root1")
	fromChildren, ok := root.Children().Get("child11")
	require.True(t, ok)
	assert.Same(t, fromAll, fromChildren)

	fromRoots, _ := tr.Roots.Get("root2")
	assert.Same(t, mustNode(t, tr, 2), fromRoots)

	// children attached after a node was placed are visible from every path
	assert.Same(t, root.Children(), mustNode(t, tr, 1).Children())
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	_, err := tree.Build(records)
	require.NoError(t, err)

	for _, rec := range records {
		_, has := rec[tree.DefaultChildrenField]
		assert.False(t, has, "input record %v gained a children field", rec["id"])
	}
}

func TestBuildEmpty(t *testing.T) {
	tr, err := tree.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, tr.All.Len())
	assert.Equal(t, 0, tr.Roots.Len())
	assert.Equal(t, 0, tr.Orphans.Len())
	assert.Equal(t, 0, tr.Structure.Len())
}

func TestBuildParentAfterChild(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 3, "parent_id": 2, "name": "c"},
		{"id": 2, "parent_id": 1, "name": "b"},
		{"id": 1, "parent_id": nil, "name": "a"},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{3, 2, 1}, tr.All.Keys())
	assert.Equal(t, []any{"a"}, tr.Roots.Keys())
	assert.Equal(t, 0, tr.Orphans.Len())
	assert.Equal(t, []any{"b"}, mustNode(t, tr, 1).Children().Keys())
	assert.Equal(t, []any{"c"}, mustNode(t, tr, 2).Children().Keys())
}

func TestBuildCycle(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 1, "parent_id": 11},
		{"id": 11, "parent_id": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Roots.Len())
	assert.Equal(t, 0, tr.Orphans.Len())
	assert.Equal(t, []any{1, 11}, tr.All.Keys())

	a, b := mustNode(t, tr, 1), mustNode(t, tr, 11)
	got, ok := a.Children().Get(11)
	require.True(t, ok)
	assert.Same(t, b, got)
	got, ok = b.Children().Get(1)
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestBuildSelfParent(t *testing.T) {
	tr, err := tree.Build([]map[string]any{{"id": 5, "parent_id": 5}})
	require.NoError(t, err)

	n := mustNode(t, tr, 5)
	got, ok := n.Children().Get(5)
	require.True(t, ok)
	assert.Same(t, n, got)
	assert.Equal(t, 0, tr.Roots.Len()+tr.Orphans.Len())
}

func TestBuildAliasConflict(t *testing.T) {
	records := []map[string]any{
		{"id": 1, "name": "root"},
		{"id": 2, "parent_id": 1, "name": "dup"},
		{"id": 3, "parent_id": 1, "name": "dup"},
	}
	tr, err := tree.Build(records)
	require.Error(t, err)
	assert.Nil(t, tr)
	assert.True(t, errors.Is(err, tree.ErrAliasConflict))

	var conflict *tree.AliasConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "dup", conflict.Alias)
	assert.Equal(t, 3, conflict.ChildID)
	assert.Equal(t, 1, conflict.ParentID)

	records[2]["name"] = "unique"
	_, err = tree.Build(records)
	assert.NoError(t, err)
}

func TestBuildRootAliasOverwrites(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 1, "name": "same"},
		{"id": 2, "name": "other"},
		{"id": 3, "name": "same"},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"same", "other"}, tr.Roots.Keys())
	got, _ := tr.Roots.Get("same")
	assert.Same(t, mustNode(t, tr, 3), got)
	assert.Equal(t, 3, tr.All.Len())
}

func TestBuildAliasFallsBackToID(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 1},
		{"id": 2, "parent_id": 1},
		{"id": 3, "parent_id": 1, "name": nil},
		{"id": 4, "parent_id": 99},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{1}, tr.Roots.Keys())
	assert.Equal(t, []any{4}, tr.Orphans.Keys())
	// a present but nil alias normalizes to ""
	assert.Equal(t, []any{2, ""}, mustNode(t, tr, 1).Children().Keys())
}

func TestBuildWithoutAlias(t *testing.T) {
	tr, err := tree.Build(sampleRecords(), tree.WithoutAlias())
	require.NoError(t, err)

	assert.Equal(t, []any{0, 1}, tr.Roots.Keys())
	first, _ := tr.Roots.Get(0)
	assert.Equal(t, 1, first.ID())
	assert.Equal(t, []any{0}, tr.Orphans.Keys())
	assert.Equal(t, []any{0}, mustNode(t, tr, 1).Children().Keys())
}

func TestBuildWithoutAliasAllowsDuplicateNames(t *testing.T) {
	_, err := tree.Build([]map[string]any{
		{"id": 1},
		{"id": 2, "parent_id": 1, "name": "dup"},
		{"id": 3, "parent_id": 1, "name": "dup"},
	}, tree.WithoutAlias())
	require.NoError(t, err)
}

func TestBuildWithoutIDField(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"parent_id": nil, "name": "a"},
		{"parent_id": 0, "name": "b"},
		{"parent_id": 1, "name": "c"},
	}, tree.WithoutIDField())
	require.NoError(t, err)

	assert.Equal(t, []any{0, 1, 2}, tr.All.Keys())
	// parent 0 is blank, so "b" is a root as well
	assert.Equal(t, []any{"a", "b"}, tr.Roots.Keys())
	assert.Equal(t, []any{"c"}, mustNode(t, tr, 1).Children().Keys())
}

func TestBuildBlankParents(t *testing.T) {
	blanks := []any{nil, "", 0, "0", false, 0.0}
	records := make([]map[string]any, 0, len(blanks)+1)
	for i, p := range blanks {
		records = append(records, map[string]any{"id": i + 1, "parent_id": p})
	}
	records = append(records, map[string]any{"id": 100})

	tr, err := tree.Build(records)
	require.NoError(t, err)

	assert.Equal(t, len(records), tr.Roots.Len())
	tr.Structure.Each(func(id, parent any) {
		assert.Nilf(t, parent, "structure[%v]", id)
	})
}

func TestBuildDuplicateIDs(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 1, "name": "first"},
		{"id": 2, "name": "two"},
		{"id": 1, "parent_id": 2, "name": "second"},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2}, tr.All.Keys())
	n := mustNode(t, tr, 1)
	name, _ := n.Get("name")
	assert.Equal(t, "second", name)

	parent, _ := tr.Structure.Get(1)
	assert.Equal(t, 2, parent)
	assert.Equal(t, []any{"two"}, tr.Roots.Keys())
	assert.Equal(t, []any{"second"}, mustNode(t, tr, 2).Children().Keys())
}

func TestBuildKeyNormalization(t *testing.T) {
	// ids as they come out of encoding/json and form input
	tr, err := tree.Build([]map[string]any{
		{"id": float64(1), "parent_id": nil, "name": "root"},
		{"id": "2", "parent_id": "1", "name": "child"},
		{"id": int64(3), "parent_id": 2.0, "name": "grandchild"},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2, 3}, tr.All.Keys())
	assert.Equal(t, 0, tr.Orphans.Len())
	assert.Equal(t, []any{"child"}, mustNode(t, tr, "1").Children().Keys())

	// structure keeps the parent exactly as supplied
	parent, _ := tr.Structure.Get(2)
	assert.Equal(t, "1", parent)
}

func TestBuildDotFields(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"meta": map[string]any{"id": "a"}, "title": "A"},
		{"meta": map[string]any{"id": "b", "parent": "a"}, "title": "B"},
	},
		tree.WithIDField("meta.id"),
		tree.WithParentField("meta.parent"),
		tree.WithAliasField("title"),
		tree.WithChildrenField("kids"),
	)
	require.NoError(t, err)

	assert.Equal(t, []any{"A"}, tr.Roots.Keys())
	a := mustNode(t, tr, "a")
	assert.Equal(t, []any{"B"}, a.Children().Keys())
	kids, ok := a.Get("kids")
	require.True(t, ok)
	assert.Same(t, a.Children(), kids)
}

func TestBuildUnsupportedKey(t *testing.T) {
	_, err := tree.Build([]map[string]any{{"id": []int{1}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, collections.ErrUnsupportedKey))

	_, err = tree.Build([]map[string]any{{"id": 1, "name": map[string]any{"x": 1}}})
	assert.True(t, errors.Is(err, collections.ErrUnsupportedKey))
}

func TestBuildReplacesInputChildrenField(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 1, "_children": "stale"},
		{"id": 2, "parent_id": 1},
		{"id": 3, "_children": "kept"},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{2}, mustNode(t, tr, 1).Children().Keys())
	leaf := mustNode(t, tr, 3)
	assert.Nil(t, leaf.Children())
	v, _ := leaf.Get("_children")
	assert.Equal(t, "kept", v)
}

func TestBuildPartition(t *testing.T) {
	records := make([]map[string]any, 0, 60)
	for i := 1; i <= 60; i++ {
		rec := map[string]any{"id": i}
		switch {
		case i%10 == 0:
			rec["parent_id"] = nil
		case i%7 == 0:
			rec["parent_id"] = 1000 + i
		default:
			rec["parent_id"] = (i/10)*10 + 10
		}
		records = append(records, rec)
	}

	tr, err := tree.Build(records)
	require.NoError(t, err)
	require.Equal(t, len(records), tr.All.Len())

	seen := make(map[any]int)
	count := func(c *tree.Nodes) {
		c.Each(func(_ any, n *tree.Node) {
			got, ok := tr.All.Get(n.ID())
			require.True(t, ok)
			assert.Same(t, got, n)
			seen[n.ID()]++
		})
	}
	count(tr.Roots)
	count(tr.Orphans)
	tr.All.Each(func(_ any, n *tree.Node) {
		if c := n.Children(); c != nil {
			count(c)
		}
	})

	assert.Len(t, seen, len(records))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "node %v placed %d times", id, n)
	}
	assert.Equal(t, 6, tr.Roots.Len())
	for _, key := range tr.Orphans.Keys() {
		parent, _ := tr.Structure.Get(key)
		_, found := tr.Node(parent)
		assert.False(t, found)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := tree.Build(sampleRecords())
	require.NoError(t, err)
	second, err := tree.Build(sampleRecords())
	require.NoError(t, err)

	assert.Equal(t, first.Digest(), second.Digest())
}

func TestDigestDetectsChanges(t *testing.T) {
	base, err := tree.Build(sampleRecords())
	require.NoError(t, err)

	renamed := sampleRecords()
	renamed[1]["name"] = "renamed"
	other, err := tree.Build(renamed)
	require.NoError(t, err)
	assert.NotEqual(t, base.Digest(), other.Digest())

	reordered := sampleRecords()
	reordered[0], reordered[2] = reordered[2], reordered[0]
	other, err = tree.Build(reordered)
	require.NoError(t, err)
	assert.NotEqual(t, base.Digest(), other.Digest())

	positional, err := tree.Build(sampleRecords(), tree.WithoutAlias())
	require.NoError(t, err)
	assert.NotEqual(t, base.Digest(), positional.Digest())
}

func TestDigestTerminatesOnCycle(t *testing.T) {
	tr, err := tree.Build([]map[string]any{
		{"id": 1, "parent_id": 2},
		{"id": 2, "parent_id": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, tr.Digest(), tr.Digest())
}

func TestTreeNodeLookup(t *testing.T) {
	tr, err := tree.Build(sampleRecords())
	require.NoError(t, err)

	for _, id := range []any{22, int64(22), 22.0, "22"} {
		n, ok := tr.Node(id)
		require.Truef(t, ok, "lookup %T(%v)", id, id)
		assert.Equal(t, 22, n.ID())
	}
	_, ok := tr.Node(4)
	assert.False(t, ok)
	_, ok = tr.Node(2.5)
	assert.False(t, ok)
}
