package unifiedmap

import "testing"

var basicFixture []Pair[string, int]

func init() {
	basicFixture = []Pair[string, int]{
		{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	}
}

func TestNewDefaults(t *testing.T) {
	m := New[string, int]()
	if !m.IsEmpty() {
		t.Fatalf("new map should be empty, got size %d", m.Size())
	}
	if got := m.Capacity(); got != DefaultInitialCapacity {
		t.Fatalf("Capacity() = %d, want %d", got, DefaultInitialCapacity)
	}
}

func TestNewWithCapacityAndLoadRejectsBadArgs(t *testing.T) {
	cases := []struct {
		name       string
		capacity   int
		loadFactor float64
	}{
		{"negative capacity", -1, 0.75},
		{"zero load factor", 4, 0},
		{"negative load factor", 4, -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Fatalf("expected panic")
				} else if _, ok := r.(*InvalidArgumentError); !ok {
					t.Fatalf("expected *InvalidArgumentError, got %T", r)
				}
			}()
			NewWithCapacityAndLoad[string, int](tc.capacity, tc.loadFactor)
		})
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	m := New[string, int]()
	for _, p := range basicFixture {
		m.Put(p.Key, p.Value)
	}
	if got := m.Size(); got != len(basicFixture) {
		t.Fatalf("Size() = %d, want %d", got, len(basicFixture))
	}
	for _, p := range basicFixture {
		v, ok := m.Get(p.Key)
		if !ok || v != p.Value {
			t.Fatalf("Get(%q) = (%d, %v), want (%d, true)", p.Key, v, ok, p.Value)
		}
		if !m.ContainsKey(p.Key) {
			t.Fatalf("ContainsKey(%q) = false, want true", p.Key)
		}
	}
}

func TestGetAbsentKey(t *testing.T) {
	m := New[string, int]()
	m.Put("present", 1)
	v, ok := m.Get("absent")
	if ok || v != 0 {
		t.Fatalf("Get(absent) = (%d, %v), want (0, false)", v, ok)
	}
	if m.ContainsKey("absent") {
		t.Fatalf("ContainsKey(absent) = true, want false")
	}
}

func TestPutOverwriteReturnsOldValue(t *testing.T) {
	m := New[string, int]()
	m.Put("k", 1)
	old, had := m.Put("k", 2)
	if !had || old != 1 {
		t.Fatalf("Put overwrite = (%d, %v), want (1, true)", old, had)
	}
	if m.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 (overwrite must not grow size)", m.Size())
	}
}

func TestRemove(t *testing.T) {
	m := New[string, int]()
	m.Put("k", 42)
	v, had := m.Remove("k")
	if !had || v != 42 {
		t.Fatalf("Remove(k) = (%d, %v), want (42, true)", v, had)
	}
	if m.ContainsKey("k") {
		t.Fatalf("key survived removal")
	}
	if _, had := m.Remove("k"); had {
		t.Fatalf("second Remove reported a hit")
	}
}

func TestContainsValue(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	if !m.ContainsValue(2) {
		t.Fatalf("ContainsValue(2) = false, want true")
	}
	if m.ContainsValue(99) {
		t.Fatalf("ContainsValue(99) = true, want false")
	}
}

func TestClear(t *testing.T) {
	m := New[string, int]()
	for _, p := range basicFixture {
		m.Put(p.Key, p.Value)
	}
	capBefore := m.Capacity()
	m.Clear()
	if m.Size() != 0 {
		t.Fatalf("Size() after Clear = %d, want 0", m.Size())
	}
	if m.Capacity() != capBefore {
		t.Fatalf("Clear shrank capacity: %d -> %d", capBefore, m.Capacity())
	}
	for _, p := range basicFixture {
		if m.ContainsKey(p.Key) {
			t.Fatalf("key %q survived Clear", p.Key)
		}
	}
}

func TestNullKeyAndNullValue(t *testing.T) {
	m := New[any, any]()
	m.Put(nil, "a")
	m.Put(1, nil)

	if got := m.Size(); got != 2 {
		t.Fatalf("Size() = %d, want 2", got)
	}
	if v, ok := m.Get(nil); !ok || v != "a" {
		t.Fatalf("Get(nil) = (%v, %v), want (a, true)", v, ok)
	}
	if !m.ContainsKey(nil) {
		t.Fatalf("ContainsKey(nil) = false, want true")
	}
	v, ok := m.Get(1)
	if !ok || v != nil {
		t.Fatalf("Get(1) = (%v, %v), want (nil, true)", v, ok)
	}
	if !m.ContainsKey(1) {
		t.Fatalf("ContainsKey(1) = false, want true")
	}
	if !m.ContainsValue(nil) {
		t.Fatalf("ContainsValue(nil) = false, want true")
	}

	sawNullKey := false
	for k := range m.Keys() {
		if k == nil {
			sawNullKey = true
		}
	}
	if !sawNullKey {
		t.Fatalf("iteration never yielded the null key")
	}
}
