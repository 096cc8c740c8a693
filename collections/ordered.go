package collections

// OrderedMap is a keyed container that remembers insertion order.
//
// It mirrors the semantics of a PHP array used as a hash: re-assigning an
// existing key replaces the value in place without moving it, and
// [OrderedMap.NextIndex] yields the key a positional append (`$a[] = $v`)
// would use.
//
//	m := collections.NewOrderedMap[string, int]()
//	m.Set("b", 2)
//	m.Set("a", 1)
//	m.Set("b", 3)
//	m.Keys() // → ["b", "a"]
//
// OrderedMap is not safe for concurrent mutation.
type OrderedMap[K comparable, V any] struct {
	keys  []K
	vals  []V
	index map[K]int
	next  int
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[K]int)}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// IsEmpty reports whether the map has no entries.
func (m *OrderedMap[K, V]) IsEmpty() bool { return len(m.keys) == 0 }

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value stored under key together with a presence flag.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Set stores value under key. A new key is appended at the end; an existing
// key keeps its position and only its value changes.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
	if n, ok := any(key).(int); ok && n >= m.next {
		m.next = n + 1
	}
}

// NextIndex returns the integer key a positional append would use: one more
// than the largest int key ever stored, or 0.
func (m *OrderedMap[K, V]) NextIndex() int { return m.next }

// Delete removes key and reports whether it was present. The positions of
// later entries shift down by one; NextIndex is unaffected.
func (m *OrderedMap[K, V]) Delete(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// At returns the entry at position i in insertion order.
// Returns false when i is out of range.
func (m *OrderedMap[K, V]) At(i int) (K, V, bool) {
	if i < 0 || i >= len(m.keys) {
		var (
			zk K
			zv V
		)
		return zk, zv, false
	}
	return m.keys[i], m.vals[i], true
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns a copy of the values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.vals))
	copy(out, m.vals)
	return out
}

// Pairs returns the entries as key/value pairs in insertion order.
func (m *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Pair[K, V]{First: k, Second: m.vals[i]}
	}
	return out
}

// Each calls fn(key, value) for every entry in insertion order.
func (m *OrderedMap[K, V]) Each(fn func(K, V)) {
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}

// Clone returns a shallow copy.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	out := &OrderedMap[K, V]{
		keys:  make([]K, len(m.keys)),
		vals:  make([]V, len(m.vals)),
		index: make(map[K]int, len(m.index)),
		next:  m.next,
	}
	copy(out.keys, m.keys)
	copy(out.vals, m.vals)
	for k, i := range m.index {
		out.index[k] = i
	}
	return out
}

// OrderedFrom builds an OrderedMap from pairs, in order. Later duplicates
// overwrite earlier values in place.
func OrderedFrom[K comparable, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}
