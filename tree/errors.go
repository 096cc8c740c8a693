package tree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the tree package.
//
// Use [errors.Is] for comparisons:
//
//	_, err := tree.Build(records)
//	if errors.Is(err, tree.ErrAliasConflict) {
//	    // two siblings share an alias
//	}
var (
	// ErrAliasConflict is returned by [Build] when two children of the same
	// parent resolve to the same alias. The concrete error is an
	// *AliasConflictError.
	ErrAliasConflict = errors.New("tree: non-unique child alias")

	// ErrCycle is returned by [Node.Materialize] when a node is reached
	// again below itself.
	ErrCycle = errors.New("tree: cycle detected")

	// ErrInvalidOptions is returned by [ParseOptions] for malformed input,
	// unknown keys, or a required field set to null.
	ErrInvalidOptions = errors.New("tree: invalid options")
)

// AliasConflictError identifies the sibling collision behind
// [ErrAliasConflict].
type AliasConflictError struct {
	Alias    any
	ChildID  any
	ParentID any
}

func (e *AliasConflictError) Error() string {
	return fmt.Sprintf("tree: non-unique alias %q for child %v under parent %v",
		fmt.Sprint(e.Alias), e.ChildID, e.ParentID)
}

// Unwrap lets errors.Is match ErrAliasConflict.
func (e *AliasConflictError) Unwrap() error { return ErrAliasConflict }
