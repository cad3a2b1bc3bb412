package sparsemap

import "cmp"

// Option customizes map construction.
type Option[K cmp.Ordered, V comparable] func(m *Map[K, V])

// Options represents construction options.
type Options[K cmp.Ordered, V comparable] []Option[K, V]

// Apply applies options.
func (o Options[K, V]) Apply(m *Map[K, V]) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(m)
	}
}

// WithDefault sets the value the map suppresses.
func WithDefault[K cmp.Ordered, V comparable](value V) Option[K, V] {
	return func(m *Map[K, V]) {
		m.defaultValue = value
	}
}

// WithEntries seeds the map through the raw path: seed pairs are stored
// verbatim, entries equal to the default included. Use Purge afterwards
// to normalize a seeded map.
func WithEntries[K cmp.Ordered, V comparable](entries ...Entry[K, V]) Option[K, V] {
	return func(m *Map[K, V]) {
		for _, entry := range entries {
			m.Store(entry.Key, entry.Value)
		}
	}
}
