package unifiedmap

import "encoding/json"

// jsonPair is the wire shape for a single map entry. JSON object keys must
// be strings, but K is an arbitrary comparable type, so the map's JSON form
// is an array of {"key":...,"value":...} pairs rather than a JSON object.
type jsonPair[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON renders m as a JSON array of key/value pairs, in table order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([]jsonPair[K, V], 0, m.occupied)
	it := m.EntryIterator()
	for it.HasNext() {
		k, v := it.Next()
		pairs = append(pairs, jsonPair[K, V]{Key: k, Value: v})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON populates m from the form MarshalJSON produces. If m is the
// unconstructed zero Map, it is first initialized with the default load
// factor and a capacity sized for the decoded pairs; otherwise the decoded pairs are added to whatever m already
// holds, later pairs winning ties on duplicate keys.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var pairs []jsonPair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	if m.table == nil {
		m.loadFactor = DefaultLoadFactor
		m.hash = newHasher[K]()
		m.valueEqual = defaultValueEqual[V]()
		m.init(fastCeil(float64(len(pairs)) / m.loadFactor))
	}
	for _, p := range pairs {
		m.Put(p.Key, p.Value)
	}
	return nil
}

// MarshalJSON renders the view as a JSON array of keys, snapshotting it
// first: the encoded form is independent of subsequent changes to the
// backing map, not a live view.
func (s *KeySet[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToSlice())
}

// MarshalJSON renders the view as a JSON array of values, snapshotted the
// same way KeySet's is.
func (v *ValuesCollection[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToSlice())
}

// MarshalJSON renders the view as a JSON array of key/value pairs,
// snapshotted the same way KeySet's is.
func (s *EntrySet[K, V]) MarshalJSON() ([]byte, error) {
	entries := s.ToSlice()
	pairs := make([]jsonPair[K, V], len(entries))
	for i, e := range entries {
		pairs[i] = jsonPair[K, V]{Key: e.Key(), Value: e.Value()}
	}
	return json.Marshal(pairs)
}
