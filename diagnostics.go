package unifiedmap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the host's cache line size, used by MemoryBytes to
// express the table's footprint in a unit a profiler would recognize.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// CollidingBuckets returns the number of direct slots that have overflowed
// into a chain. A high ratio against Capacity suggests a poor hash
// distribution for the key type in use.
func (m *Map[K, V]) CollidingBuckets() int {
	n := 0
	for i := 0; i < len(m.table); i += 2 {
		if m.table[i] == any(chainedKey) {
			n++
		}
	}
	return n
}

// Capacity returns the number of direct slot pairs currently allocated.
func (m *Map[K, V]) Capacity() int {
	return len(m.table) >> 1
}

// headerWords is the per-allocation header overhead charged by MemoryWords:
// two words for the table itself and two words for each chain buffer.
const headerWords = 2

// MemoryWords reports the table's footprint in machine words: the table
// length plus its header, plus each chain's length plus its own header.
func (m *Map[K, V]) MemoryWords() int {
	words := len(m.table) + headerWords
	for i := 0; i < len(m.table); i += 2 {
		if m.table[i] == any(chainedKey) {
			words += headerWords + len(m.table[i+1].([]any))
		}
	}
	return words
}

// MemoryBytes reports MemoryWords converted to bytes using the host's
// pointer size, rounded up to a whole number of cache lines.
func (m *Map[K, V]) MemoryBytes() int {
	raw := m.MemoryWords() * int(unsafe.Sizeof(uintptr(0)))
	line := int(CacheLineSize)
	return ((raw + line - 1) / line) * line
}
