package arr

import "strings"

// Get reads a value from a nested map[string]any using a dot-separated path.
// Returns def[0] (or nil) when any segment is missing or is not a map.
//
//	m := map[string]any{"meta": map[string]any{"parent": 7}}
//	arr.Get(m, "meta.parent")       // 7
//	arr.Get(m, "meta.missing", -1)  // -1
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := lookupPath(m, strings.Split(key, ".")); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-separated path exists in m. A path whose
// final value is nil still exists.
func Has(m map[string]any, key string) bool {
	_, ok := lookupPath(m, strings.Split(key, "."))
	return ok
}

func lookupPath(m map[string]any, segments []string) (any, bool) {
	var cur any = m
	for _, seg := range segments {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = node[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}
