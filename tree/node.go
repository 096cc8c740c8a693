package tree

import (
	"fmt"
	"maps"
	"strings"

	"github.com/hasbyte1/go-arr-utils/arr"
	"github.com/hasbyte1/go-arr-utils/collections"
)

// Nodes is the keyed, insertion-ordered container used for Tree.All,
// Tree.Roots, Tree.Orphans and every children container. Keys are
// normalized ids or aliases (see collections.NormalizeKey), or positions
// when aliasing is disabled.
type Nodes = collections.OrderedMap[any, *Node]

// Node wraps one input record. The record is copied shallowly, so field
// values are shared with the input but adding children never touches the
// caller's map.
//
// A Node is a single entity: the pointer in Tree.All is the same pointer
// found in Roots, Orphans or a parent's children.
type Node struct {
	id            any
	fields        map[string]any
	childrenField string
}

func newNode(id any, record map[string]any, childrenField string) *Node {
	fields := maps.Clone(record)
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Node{id: id, fields: fields, childrenField: childrenField}
}

// ID returns the node's normalized id.
func (n *Node) ID() any { return n.id }

// Get returns a field of the underlying record. Dot-separated names reach
// into nested maps when no literal key matches.
func (n *Node) Get(field string) (any, bool) {
	return lookup(n.fields, field)
}

// Children returns the node's children container, or nil when the node has
// no children.
func (n *Node) Children() *Nodes {
	c, _ := n.fields[n.childrenField].(*Nodes)
	return c
}

// Record returns a shallow copy of the node's fields. When the node has
// children, the children field holds its *Nodes container.
func (n *Node) Record() map[string]any { return maps.Clone(n.fields) }

// ensureChildren attaches an empty children container on first use,
// replacing whatever the input record held under that field.
func (n *Node) ensureChildren() *Nodes {
	if c := n.Children(); c != nil {
		return c
	}
	c := collections.NewOrderedMap[any, *Node]()
	n.fields[n.childrenField] = c
	return c
}

// Materialize deep-copies the node and its descendants into plain maps.
// Each children container becomes a []map[string]any in container order.
// It returns ErrCycle when a node shows up again on its own ancestor path.
func (n *Node) Materialize() (map[string]any, error) {
	return n.materialize(make(map[*Node]struct{}))
}

func (n *Node) materialize(path map[*Node]struct{}) (map[string]any, error) {
	if _, seen := path[n]; seen {
		return nil, fmt.Errorf("%w: node %v is its own ancestor", ErrCycle, n.id)
	}
	path[n] = struct{}{}
	defer delete(path, n)

	out := maps.Clone(n.fields)
	c := n.Children()
	if c == nil {
		return out, nil
	}
	kids := make([]map[string]any, 0, c.Len())
	for _, child := range c.Values() {
		m, err := child.materialize(path)
		if err != nil {
			return nil, err
		}
		kids = append(kids, m)
	}
	out[n.childrenField] = kids
	return out, nil
}

// lookup reads field from rec, falling back to a dot path when no literal
// key matches.
func lookup(rec map[string]any, field string) (any, bool) {
	if v, ok := rec[field]; ok {
		return v, true
	}
	if strings.Contains(field, ".") && arr.Has(rec, field) {
		return arr.Get(rec, field), true
	}
	return nil, false
}
