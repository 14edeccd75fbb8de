package reports

// orderedMap is a string-keyed container that remembers first-seen insertion
// order. The trend and breakdown reductions depend on that order being
// stable, so it is explicit here instead of leaning on map iteration.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[string]V)}
}

// Set stores value under key, appending the key on first sight.
func (m *orderedMap[V]) Set(key string, value V) {
	if _, seen := m.values[key]; !seen {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it exists.
func (m *orderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *orderedMap[V]) Keys() []string {
	return m.keys
}

// Len returns the number of stored keys.
func (m *orderedMap[V]) Len() int {
	return len(m.keys)
}
