package unifiedmap

// init rounds initialCapacity up to a power of two and allocates the table.
func (m *Map[K, V]) init(initialCapacity int) {
	capacity := 1
	for capacity < initialCapacity {
		capacity <<= 1
	}
	m.allocate(capacity)
}

// allocate installs a fresh table of the given logical capacity (a power of
// two) and recomputes maxSize. capacity is the number of direct slot pairs,
// so the underlying slice has length 2*capacity.
func (m *Map[K, V]) allocate(capacity int) {
	m.table = make([]any, capacity<<1)
	m.computeMaxSize(capacity)
}

// computeMaxSize picks the occupancy threshold that triggers a rehash.
// At least one empty slot is always kept free, which the open-addressing
// termination guarantee (a put must always find a null cell) depends on.
func (m *Map[K, V]) computeMaxSize(capacity int) {
	max := int(float64(capacity) * m.loadFactor)
	if capacity-1 < max {
		max = capacity - 1
	}
	m.maxSize = max
}

// rehash doubles capacity (newLength is the current table's length, i.e.
// twice the current logical capacity) and reinserts every live entry.
func (m *Map[K, V]) rehash(newLength int) {
	old := m.table
	m.allocate(newLength)
	m.occupied = 0

	for i := 0; i < len(old); i += 2 {
		cur := old[i]
		if cur == any(chainedKey) {
			chain := old[i+1].([]any)
			for j := 0; j < len(chain); j += 2 {
				if chain[j] != nil {
					m.Put(nonSentinel[K](chain[j]), chain[j+1].(V))
				}
			}
		} else if cur != nil {
			m.Put(nonSentinel[K](cur), old[i+1].(V))
		}
	}
}
