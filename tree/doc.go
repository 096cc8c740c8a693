// Package tree rebuilds a hierarchy from flat, parent-referencing records,
// such as rows of an adjacency-list table.
//
// # Building
//
// [Build] makes two passes. The first indexes every record by id into
// Tree.All and records its raw parent in Tree.Structure. The second puts each
// node in exactly one place:
//
//   - Roots, when its parent is blank
//   - Orphans, when its parent id matches no record
//   - its parent's children container otherwise
//
// Nodes are shared, not copied: the *Node in All is the same pointer stored
// in Roots, Orphans or a children container, so a change made through one
// path is visible through every other.
//
// # Aliases
//
// Roots, orphans and children are keyed by an alias field ("name" by
// default), falling back to the node id when the field is absent. Two
// children of one parent with the same alias make [Build] fail with an
// *[AliasConflictError]. With aliasing disabled ([WithoutAlias]) nodes are
// appended positionally.
//
// # Cycles
//
// Classification looks at the immediate parent only. Records that parent
// each other end up nested in each other's children and appear in neither
// Roots nor Orphans. The result is a reference graph; use
// [Node.Materialize] to deep-copy a subtree safely, and [Tree.Digest] to
// compare two trees.
//
// # Configuration
//
// Field names are set with functional options ([WithIDField],
// [WithParentField], [WithAliasField], [WithChildrenField]) or decoded from
// YAML/JSON with [ParseOptions].
package tree
