package arr

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-arr-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Keyed helpers
//
// These operate on collections.OrderedMap so that the source order of keys
// survives, which plain Go maps cannot guarantee.
// ─────────────────────────────────────────────────────────────────────────────

// KSlice returns the entries of m whose key is listed in keys. The order of
// m is kept; the order of keys does not matter.
//
//	arr.KSlice(m, "key3", "key1") // → {key1: …, key3: …}
func KSlice[K comparable, V any](m *collections.OrderedMap[K, V], keys ...K) *collections.OrderedMap[K, V] {
	want := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	out := collections.NewOrderedMap[K, V]()
	m.Each(func(k K, v V) {
		if _, ok := want[k]; ok {
			out.Set(k, v)
		}
	})
	return out
}

// DeprefixKeys strips prefix from every key that has it. Keys without the
// prefix are dropped unless preserveNonPrefixed is set.
//
//	m: {"prefix->key": 1, "prefix->key2": 2, "other": 3}
//	arr.DeprefixKeys(m, "prefix->", false) // → {"key": 1, "key2": 2}
//	arr.DeprefixKeys(m, "prefix->", true)  // → {"key": 1, "key2": 2, "other": 3}
func DeprefixKeys[V any](m *collections.OrderedMap[string, V], prefix string, preserveNonPrefixed bool) *collections.OrderedMap[string, V] {
	out := collections.NewOrderedMap[string, V]()
	m.Each(func(k string, v V) {
		if rest, ok := strings.CutPrefix(k, prefix); ok {
			out.Set(rest, v)
		} else if preserveNonPrefixed {
			out.Set(k, v)
		}
	})
	return out
}

// Group splits m into named sub-maps. For every entry fn returns the group
// name, the key and value to store inside that group, and false to drop the
// entry altogether. Groups appear in the order their first member was seen.
//
//	byPrefix := arr.Group(m, func(v string, k string) (string, string, string, bool) {
//	    group, field, _ := strings.Cut(k, ".")
//	    return group, field, v, true
//	})
//	// {"group1.field1": "a", "group2.field1": "b"}
//	// → {group1: {field1: "a"}, group2: {field1: "b"}}
func Group[K comparable, V any, G comparable](m *collections.OrderedMap[K, V], fn func(value V, key K) (G, K, V, bool)) *collections.OrderedMap[G, *collections.OrderedMap[K, V]] {
	groups := collections.NewOrderedMap[G, *collections.OrderedMap[K, V]]()
	m.Each(func(k K, v V) {
		g, nk, nv, keep := fn(v, k)
		if !keep {
			return
		}
		bucket, ok := groups.Get(g)
		if !ok {
			bucket = collections.NewOrderedMap[K, V]()
			groups.Set(g, bucket)
		}
		bucket.Set(nk, nv)
	})
	return groups
}

// ─────────────────────────────────────────────────────────────────────────────
// Slices of slices and records
// ─────────────────────────────────────────────────────────────────────────────

// Shortest returns the shortest slice in items. On a tie the earliest one
// wins when firstMatch is true, otherwise the latest.
// Returns false when items is empty.
//
//	raw := [][]int{{1, 2, 3, 4}, {1, 2}, {1, 2, 4}, {3, 4}}
//	arr.Shortest(raw, true)  // → [1 2]
//	arr.Shortest(raw, false) // → [3 4]
func Shortest[T any](items [][]T, firstMatch bool) ([]T, bool) {
	if len(items) == 0 {
		return nil, false
	}
	best := items[0]
	for _, cand := range items[1:] {
		if len(cand) < len(best) || (len(cand) == len(best) && !firstMatch) {
			best = cand
		}
	}
	return best, true
}

// ExtractValues collects the value of key from every record that has it.
// Records without the key are skipped.
func ExtractValues(records []map[string]any, key string) []any {
	out := make([]any, 0, len(records))
	for _, rec := range records {
		if v, ok := rec[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Reindex keys records by the value of their key field, normalized with
// [collections.NormalizeKey]. A record without the field is keyed by "".
// When several records share a key the last one wins, at the position of
// the first.
func Reindex(records []map[string]any, key string) (*collections.OrderedMap[any, map[string]any], error) {
	out := collections.NewOrderedMap[any, map[string]any]()
	for i, rec := range records {
		k, err := collections.NormalizeKey(rec[key])
		if err != nil {
			return nil, fmt.Errorf("arr: reindex record %d: %w", i, err)
		}
		out.Set(k, rec)
	}
	return out, nil
}
