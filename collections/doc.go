// Package collections provides the keyed container shared by the arr and
// tree packages.
//
// # OrderedMap
//
// [OrderedMap] behaves like a PHP array used as a hash: keys keep the order
// they were first inserted in, re-assigning a key replaces its value in
// place, and [OrderedMap.NextIndex] gives the next positional key:
//
//	m := collections.NewOrderedMap[any, string]()
//	m.Set("a", "x")
//	m.Set(m.NextIndex(), "y") // key 0
//	m.Set(m.NextIndex(), "z") // key 1
//	m.Keys()                  // → ["a", 0, 1]
//
// # Keys from loosely typed data
//
// Ids read from JSON arrive as float64, ids from form input as strings.
// [NormalizeKey] folds them onto a single canonical key so that 7, int64(7),
// 7.0 and "7" all address the same entry.
package collections
