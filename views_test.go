package unifiedmap

import (
	"sort"
	"testing"
)

func newFilledMap() *Map[string, int] {
	m := New[string, int]()
	m.Put("k1", 1)
	m.Put("k2", 2)
	m.Put("k3", 3)
	m.Put("k4", 4)
	m.Put("k5", 5)
	return m
}

func TestKeySetViewBasics(t *testing.T) {
	m := newFilledMap()
	ks := m.KeySet()
	if ks.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", ks.Size())
	}
	if !ks.Contains("k1") {
		t.Fatalf("Contains(k1) = false, want true")
	}
	keys := ks.ToSlice()
	sort.Strings(keys)
	want := []string{"k1", "k2", "k3", "k4", "k5"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("ToSlice() = %v, want %v", keys, want)
		}
	}
}

func TestKeySetRemoveWritesThroughToMap(t *testing.T) {
	m := newFilledMap()
	ks := m.KeySet()
	if !ks.Remove("k1") {
		t.Fatalf("Remove(k1) = false, want true")
	}
	if m.ContainsKey("k1") {
		t.Fatalf("k1 still present in backing map")
	}
	if m.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", m.Size())
	}
}

func TestKeySetAddUnsupported(t *testing.T) {
	m := newFilledMap()
	err := m.KeySet().Add("k6")
	if _, ok := err.(*UnsupportedOperationError); !ok {
		t.Fatalf("expected *UnsupportedOperationError, got %T", err)
	}
}

func TestKeySetRetainAll(t *testing.T) {
	m := newFilledMap()
	keep := map[string]struct{}{"k1": {}, "k3": {}, "k5": {}}
	shrank := m.KeySet().RetainAll(keep)
	if !shrank {
		t.Fatalf("RetainAll = false, want true")
	}
	if m.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", m.Size())
	}
	for k := range keep {
		if !m.ContainsKey(k) {
			t.Fatalf("retained key %q missing", k)
		}
	}
	for _, k := range []string{"k2", "k4"} {
		if m.ContainsKey(k) {
			t.Fatalf("discarded key %q still present", k)
		}
	}
}

func TestKeySetRetainAllNoShrink(t *testing.T) {
	m := newFilledMap()
	keep := m.KeySet().ToSlice()
	all := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		all[k] = struct{}{}
	}
	if m.KeySet().RetainAll(all) {
		t.Fatalf("RetainAll = true, want false when nothing is discarded")
	}
	if m.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", m.Size())
	}
}

func TestValuesViewBasics(t *testing.T) {
	m := newFilledMap()
	vs := m.ValuesView()
	if vs.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", vs.Size())
	}
	if !vs.Contains(3) {
		t.Fatalf("Contains(3) = false, want true")
	}
	if !vs.Remove(3) {
		t.Fatalf("Remove(3) = false, want true")
	}
	if m.ContainsValue(3) {
		t.Fatalf("value 3 still present in backing map")
	}
}

func TestEntrySetIterationAndSetValue(t *testing.T) {
	m := newFilledMap()
	es := m.EntrySet()
	if es.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", es.Size())
	}

	it := es.Iterator()
	found := false
	for it.HasNext() {
		e := it.Next()
		if e.Key() == "k2" {
			found = true
			old, had := e.SetValue(200)
			if !had || old != 2 {
				t.Fatalf("SetValue = (%d, %v), want (2, true)", old, had)
			}
		}
	}
	if !found {
		t.Fatalf("entry k2 never visited")
	}
	v, _ := m.Get("k2")
	if v != 200 {
		t.Fatalf("Get(k2) after SetValue = %d, want 200", v)
	}
}

func TestEntrySetRemoveRequiresMatchingValue(t *testing.T) {
	m := newFilledMap()
	es := m.EntrySet()
	if es.Remove("k1", 999) {
		t.Fatalf("Remove with wrong value succeeded")
	}
	if !m.ContainsKey("k1") {
		t.Fatalf("k1 should still be present")
	}
	if !es.Remove("k1", 1) {
		t.Fatalf("Remove with matching value failed")
	}
	if m.ContainsKey("k1") {
		t.Fatalf("k1 should have been removed")
	}
}
