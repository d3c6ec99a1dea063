// File: history.go
// Role: Current-snapshot tracking, version ledger and time travel.
// Concurrency:
//   - mu serializes writers: reading "current" and publishing "next" is one step.
//   - Snapshots handed out are immutable and may be read without the lock.

package graph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/socialverse/ledger"
)

// History owns the current snapshot of one graph session and the ledger of
// every snapshot it has published. Version 0 (the empty graph) is saved on
// construction, so the snapshot version always equals its ledger id.
type History struct {
	mu      sync.Mutex
	current *Snapshot
	ledger  *ledger.Ledger[*Snapshot]
}

// NewHistory returns a History whose current snapshot is the empty graph.
func NewHistory() *History {
	h := &History{current: Empty(), ledger: ledger.New[*Snapshot]()}
	h.ledger.Save(h.current.Version(), h.current)

	return h
}

// Current returns the snapshot new mutations will be applied to.
func (h *History) Current() *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.current
}

// AddUser applies Snapshot.AddUser to the current snapshot and publishes the result.
func (h *History) AddUser(id, name string) (*Snapshot, error) {
	return h.apply(func(s *Snapshot) (*Snapshot, error) { return s.AddUser(id, name) })
}

// AddFriendship applies Snapshot.AddFriendship to the current snapshot and publishes the result.
func (h *History) AddFriendship(a, b string) (*Snapshot, error) {
	return h.apply(func(s *Snapshot) (*Snapshot, error) { return s.AddFriendship(a, b) })
}

// RemoveFriendship applies Snapshot.RemoveFriendship to the current snapshot and publishes the result.
func (h *History) RemoveFriendship(a, b string) (*Snapshot, error) {
	return h.apply(func(s *Snapshot) (*Snapshot, error) { return s.RemoveFriendship(a, b) })
}

// apply runs op against the current snapshot and, on success, saves and
// promotes the result. On error nothing is published.
func (h *History) apply(op func(*Snapshot) (*Snapshot, error)) (*Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// current is always the highest saved id (TimeTravel republishes at the
	// head), so next.Version() never collides with a saved snapshot.
	next, err := op(h.current)
	if err != nil {
		return nil, err
	}
	h.ledger.Save(next.Version(), next)
	h.current = next

	return next, nil
}

// At returns the snapshot saved under version.
func (h *History) At(version int) (*Snapshot, bool) {
	return h.ledger.Get(version)
}

// TimeTravel makes the snapshot saved under version the working state.
//
// The restored adjacency is re-published as a new version (latest+1) that
// shares every record with the old one, so the version active before the
// restore stays in the ledger untouched.
//
// Errors:
//   - ErrVersionNotFound if version was never saved.
func (h *History) TimeTravel(version int) (*Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old, ok := h.ledger.Get(version)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVersionNotFound, version)
	}
	restored := old.Rebase(h.ledger.Latest() + 1)
	h.ledger.Save(restored.Version(), restored)
	h.current = restored

	return restored, nil
}

// Versions lists every saved snapshot in ascending version order.
func (h *History) Versions() []VersionInfo {
	out := make([]VersionInfo, 0, h.ledger.Len())
	for _, snap := range h.ledger.All() {
		out = append(out, snap.Info())
	}

	return out
}

// Ledger exposes the underlying version ledger for read access.
func (h *History) Ledger() *ledger.Ledger[*Snapshot] { return h.ledger }
