package tree

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Digest returns a BLAKE2b-256 fingerprint of the tree's shape and content:
// the order of All, every raw parent in Structure, each node's fields, and
// the key order of Roots, Orphans and every children container. Two builds
// of the same input with the same options produce the same digest.
//
// Children are encoded by id rather than by descent, so Digest terminates on
// trees built from cyclic input.
//
// Field values are encoded with their dynamic type and fmt's %v form, which
// prints maps with sorted keys. Values whose %v form is not stable, such as
// pointers, make the digest unstable too.
func (t *Tree) Digest() [32]byte {
	var b bytes.Buffer

	writeNodes(&b, "all", t.All)
	writeNodes(&b, "roots", t.Roots)
	writeNodes(&b, "orphans", t.Orphans)

	t.Structure.Each(func(id, parent any) {
		fmt.Fprintf(&b, "edge %s %s\n", token(id), token(parent))
	})

	t.All.Each(func(id any, n *Node) {
		fmt.Fprintf(&b, "node %s\n", token(id))
		fields := make([]string, 0, len(n.fields))
		for k := range n.fields {
			fields = append(fields, k)
		}
		slices.Sort(fields)
		for _, k := range fields {
			if _, ok := n.fields[k].(*Nodes); ok {
				continue
			}
			fmt.Fprintf(&b, "field %s %s\n", strconv.Quote(k), token(n.fields[k]))
		}
		if c := n.Children(); c != nil {
			writeNodes(&b, "children", c)
		}
	})

	return blake2b.Sum256(b.Bytes())
}

func writeNodes(b *bytes.Buffer, label string, c *Nodes) {
	fmt.Fprintf(b, "%s %d\n", label, c.Len())
	c.Each(func(key any, n *Node) {
		fmt.Fprintf(b, "  %s -> %s\n", token(key), token(n.id))
	})
}

func token(v any) string {
	return strconv.Quote(fmt.Sprintf("%T:%v", v, v))
}
