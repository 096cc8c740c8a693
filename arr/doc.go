// Package arr provides standalone helper functions for Go slices, loosely
// typed records (map[string]any) and ordered keyed maps.
//
// # Slice helpers
//
// Slice helpers are generic and operate on plain []T values:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	ok    := arr.Every([]any{1, "2", 3.5}, arr.IsNumeric)
//	last, _ := arr.Last([]string{"a", "b"})
//
// # Sequence overlap
//
// [Overlap] locates where the head of one sequence lines up with the tail of
// another, which is what is needed to stitch back together chunks that were
// split with some overlap:
//
//	span, ok := arr.Overlap([]int{0, 1, 2, 3, 5, 6}, []int{3, 5, 6, 7, 8, 9})
//	// span == arr.Span{Start: 3, End: 6}, ok == true
//
// # Records and keyed maps
//
// Record helpers ([ExtractValues], [Reindex], [Get], [Has]) work on
// map[string]any values. Helpers whose result depends on key order
// ([KSlice], [DeprefixKeys], [Group], [Join]) take a
// [collections.OrderedMap] instead of a Go map:
//
//	css := collections.NewOrderedMap[string, any]()
//	css.Set("transform", []string{"scale(1.5)", "rotate(90deg)"})
//	css.Set("color", "red")
//	arr.Join(css, arr.JoinCSS)
//	// transform: scale(1.5) rotate(90deg);
//	// color: red
//
// Building a tree out of parent-referencing records lives in the tree
// package.
package arr
