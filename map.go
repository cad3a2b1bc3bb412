// Package sparsemap provides an ordered key/value container that omits
// entries equal to a configurable default value. It is an optimization
// over a plain ordered map for workloads where most keys carry a
// typical value and only exceptions are worth the storage cost, such as
// sparse overrides on top of a baseline.
package sparsemap

import (
	"cmp"

	"github.com/google/btree"
	"github.com/viant/sparsemap/zero"
)

// The degree of the backing btree.
const treeDegree = 32

// Entry is a single key/value pair.
type Entry[K cmp.Ordered, V comparable] struct {
	Key   K
	Value V
}

// Map is an ordered key/value container with a designated default
// value that is treated as not worth storing. Entries are unique by key
// and ordered by the key's natural ordering.
//
// The map exposes two access modes. The suppressing operators Pull,
// Put, Set and Purge uphold the space-saving contract: no stored value
// equals the default. The raw methods Load, Store and Delete behave
// like an ordinary ordered map and may store default-valued entries;
// Purge restores the contract after raw writes.
//
// A Map is not safe for unsynchronized concurrent mutation.
type Map[K cmp.Ordered, V comparable] struct {
	tree         *btree.BTreeG[Entry[K, V]]
	defaultValue V
}

// New creates a map. The default value is the zero value of V unless
// overridden with WithDefault; WithEntries seeds the map through the
// raw path.
func New[K cmp.Ordered, V comparable](opts ...Option[K, V]) *Map[K, V] {
	result := &Map[K, V]{
		tree:         btree.NewG[Entry[K, V]](treeDegree, lessEntry[K, V]),
		defaultValue: zero.Value[V](),
	}
	Options[K, V](opts).Apply(result)
	return result
}

func lessEntry[K cmp.Ordered, V comparable](a, b Entry[K, V]) bool {
	return cmp.Less(a.Key, b.Key)
}

// Default returns the value the map suppresses. It is fixed at
// construction time.
func (m *Map[K, V]) Default() V {
	return m.defaultValue
}

// Pull returns the value stored under key, or the default value when
// the key is absent. It is a pure read and never inserts, so it behaves
// like a lookup into a map with every key pre-populated with the
// default.
func (m *Map[K, V]) Pull(key K) V {
	entry, ok := m.tree.Get(Entry[K, V]{Key: key})
	if !ok {
		return m.defaultValue
	}
	return entry.Value
}

// Put stores the pair unless the key is absent and the value equals the
// default. It never removes an entry: writing the default to a present
// key overwrites it in place, writing the default to an absent key does
// nothing.
func (m *Map[K, V]) Put(key K, value V) {
	if value != m.defaultValue || m.Has(key) {
		m.tree.ReplaceOrInsert(Entry[K, V]{Key: key, Value: value})
	}
}

// Set stores the pair when the value differs from the default, and
// removes the key otherwise. After Set(key, default) the key is absent
// regardless of its prior state.
func (m *Map[K, V]) Set(key K, value V) {
	if value != m.defaultValue {
		m.tree.ReplaceOrInsert(Entry[K, V]{Key: key, Value: value})
		return
	}
	m.tree.Delete(Entry[K, V]{Key: key})
}

// Purge removes every stored pair whose value equals the default,
// leaving all other pairs untouched. Idempotent.
func (m *Map[K, V]) Purge() {
	var matched []Entry[K, V]
	m.tree.Ascend(func(item Entry[K, V]) bool {
		if item.Value == m.defaultValue {
			matched = append(matched, item)
		}
		return true
	})
	for _, item := range matched {
		m.tree.Delete(item)
	}
}

// Load returns the stored value and whether the key is present. Absent
// keys return the zero value of V, not the default; use Pull for
// default-aware reads.
func (m *Map[K, V]) Load(key K) (V, bool) {
	entry, ok := m.tree.Get(Entry[K, V]{Key: key})
	return entry.Value, ok
}

// Store stores the pair unconditionally, bypassing suppression.
func (m *Map[K, V]) Store(key K, value V) {
	m.tree.ReplaceOrInsert(Entry[K, V]{Key: key, Value: value})
}

// Delete removes the key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.tree.Delete(Entry[K, V]{Key: key})
	return ok
}

// Has reports whether the key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.tree.Has(Entry[K, V]{Key: key})
}

// Len returns the stored pair count.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Range calls fn for each stored pair in ascending key order until fn
// returns false. The map must not be mutated during iteration.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.tree.Ascend(func(item Entry[K, V]) bool {
		return fn(item.Key, item.Value)
	})
}

// Keys returns the stored keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	result := make([]K, 0, m.tree.Len())
	m.tree.Ascend(func(item Entry[K, V]) bool {
		result = append(result, item.Key)
		return true
	})
	return result
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (Entry[K, V], bool) {
	return m.tree.Min()
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (Entry[K, V], bool) {
	return m.tree.Max()
}

// Clear removes all stored pairs; the default value is retained.
func (m *Map[K, V]) Clear() {
	m.tree.Clear(false)
}
