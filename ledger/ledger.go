// File: ledger.go
// Role: Version catalog (id → immutable snapshot) with "current" tracking.
// Determinism:
//   - Versions() and All() iterate in ascending id order.
// Concurrency:
//   - mu guards versions, current and latest; snapshots themselves are never touched.

package ledger

import (
	"iter"
	"sort"
	"sync"
)

// NoVersion is reported by Current and Latest on a ledger that has never been saved to.
const NoVersion = -1

// Ledger is an append-only map from version id to snapshot.
//
// The zero value is not usable; construct with New.
type Ledger[T any] struct {
	mu       sync.RWMutex
	versions map[int]T
	current  int // id of the most recent Save
	latest   int // highest id ever saved
}

// New returns an empty Ledger.
// Complexity: O(1).
func New[T any]() *Ledger[T] {
	return &Ledger[T]{
		versions: make(map[int]T),
		current:  NoVersion,
		latest:   NoVersion,
	}
}

// Save stores snap under version and marks version as current.
// Saving an id that already exists replaces the stored value; callers that
// publish immutable snapshots only do so with the same snapshot.
// Complexity: O(1) amortized.
func (l *Ledger[T]) Save(version int, snap T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.versions[version] = snap
	l.current = version
	if version > l.latest {
		l.latest = version
	}
}

// Get returns the snapshot saved under version; ok is false when the id is unknown.
// Complexity: O(1).
func (l *Ledger[T]) Get(version int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snap, ok := l.versions[version]

	return snap, ok
}

// Has reports whether version has been saved.
func (l *Ledger[T]) Has(version int) bool {
	_, ok := l.Get(version)

	return ok
}

// Current returns the id of the most recent Save, or NoVersion.
func (l *Ledger[T]) Current() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// Latest returns the highest id ever saved, or NoVersion.
func (l *Ledger[T]) Latest() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.latest
}

// Len returns the number of stored versions.
func (l *Ledger[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.versions)
}

// Versions returns all stored ids in ascending order.
// Complexity: O(V·log V).
func (l *Ledger[T]) Versions() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]int, 0, len(l.versions))
	for id := range l.versions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// All yields (id, snapshot) pairs in ascending id order.
//
// The id list is captured when iteration starts; versions saved during the
// iteration are not visited. The ledger lock is not held while yielding, so
// the loop body may call back into the ledger.
func (l *Ledger[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, id := range l.Versions() {
			snap, ok := l.Get(id)
			if !ok {
				continue
			}
			if !yield(id, snap) {
				return
			}
		}
	}
}
