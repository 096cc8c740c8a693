package tree

import (
	"fmt"

	"github.com/hasbyte1/go-arr-utils/arr"
	"github.com/hasbyte1/go-arr-utils/collections"
)

// Tree is the result of [Build].
type Tree struct {
	// All holds every node keyed by id, in first-seen input order.
	All *Nodes

	// Roots holds nodes whose parent is blank.
	Roots *Nodes

	// Orphans holds nodes whose parent id matches no node.
	Orphans *Nodes

	// Structure maps every id to its parent value as supplied, or nil for a
	// blank parent. Parents are not resolved.
	Structure *collections.OrderedMap[any, any]
}

// Node looks up a node by id. The id is normalized first, so 7, int64(7),
// 7.0 and "7" all find the same node.
func (t *Tree) Node(id any) (*Node, bool) {
	key, err := collections.NormalizeKey(id)
	if err != nil {
		return nil, false
	}
	return t.All.Get(key)
}

// Build turns a flat list of parent-referencing records into a tree.
//
//	records := []map[string]any{
//	    {"id": 1, "parent_id": nil, "name": "root1"},
//	    {"id": 11, "parent_id": 1, "name": "child11"},
//	    {"id": 33, "parent_id": 3, "name": "orphan"},
//	}
//	t, err := tree.Build(records)
//	// t.Roots:   {root1: node 1}
//	// node 1 children: {child11: node 11}
//	// t.Orphans: {orphan: node 33}
//
// Records may list children before their parents. Every record lands in
// All (a later duplicate id replaces the earlier one in place) and then in
// exactly one of Roots, Orphans, or its parent's children container.
//
// Only the immediate parent is checked, never the chain of ancestors.
// Records that parent each other without reaching a root therefore show up
// in neither Roots nor Orphans; each is nested in the other's children.
//
// The only failure during classification is two siblings sharing an alias,
// reported as *AliasConflictError. Ids, parents and aliases that cannot be
// used as keys fail with collections.ErrUnsupportedKey. No partial tree is
// returned on error.
func Build(records []map[string]any, opts ...Option) (*Tree, error) {
	o := resolveOptions(opts)
	t := &Tree{
		All:       collections.NewOrderedMap[any, *Node](),
		Roots:     collections.NewOrderedMap[any, *Node](),
		Orphans:   collections.NewOrderedMap[any, *Node](),
		Structure: collections.NewOrderedMap[any, any](),
	}

	for i, rec := range records {
		var rawID any = i
		if o.IDField != "" {
			rawID, _ = lookup(rec, o.IDField)
		}
		id, err := collections.NormalizeKey(rawID)
		if err != nil {
			return nil, fmt.Errorf("tree: record %d id: %w", i, err)
		}
		var parent any
		if o.ParentField != "" {
			if v, ok := lookup(rec, o.ParentField); ok && !arr.Blank(v) {
				parent = v
			}
		}
		t.All.Set(id, newNode(id, rec, o.ChildrenField))
		t.Structure.Set(id, parent)
	}

	for i := 0; i < t.Structure.Len(); i++ {
		id, parent, _ := t.Structure.At(i)
		node, _ := t.All.Get(id)

		if parent == nil {
			if err := place(t.Roots, node, o.AliasField); err != nil {
				return nil, err
			}
			continue
		}

		pid, err := collections.NormalizeKey(parent)
		if err != nil {
			return nil, fmt.Errorf("tree: parent of %v: %w", id, err)
		}
		p, ok := t.All.Get(pid)
		if !ok {
			if err := place(t.Orphans, node, o.AliasField); err != nil {
				return nil, err
			}
			continue
		}

		kids := p.ensureChildren()
		if o.AliasField == "" {
			kids.Set(kids.NextIndex(), node)
			continue
		}
		alias, err := aliasOf(node, o.AliasField)
		if err != nil {
			return nil, err
		}
		if kids.Has(alias) {
			return nil, &AliasConflictError{Alias: alias, ChildID: id, ParentID: pid}
		}
		kids.Set(alias, node)
	}
	return t, nil
}

// place stores node in c under its alias, or positionally when aliasField
// is empty. An alias already present is overwritten in place.
func place(c *Nodes, node *Node, aliasField string) error {
	if aliasField == "" {
		c.Set(c.NextIndex(), node)
		return nil
	}
	alias, err := aliasOf(node, aliasField)
	if err != nil {
		return err
	}
	c.Set(alias, node)
	return nil
}

// aliasOf returns the normalized value of aliasField, or the node id when
// the field is absent. A present field wins even when its value is nil.
func aliasOf(node *Node, aliasField string) (any, error) {
	v, ok := node.Get(aliasField)
	if !ok {
		return node.id, nil
	}
	key, err := collections.NormalizeKey(v)
	if err != nil {
		return nil, fmt.Errorf("tree: alias of %v: %w", node.id, err)
	}
	return key, nil
}
