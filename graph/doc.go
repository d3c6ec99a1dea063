// Package graph provides a persistent (immutable, versioned) friendship graph.
//
// A Snapshot is an immutable adjacency view of users and friendships. Every
// mutating method returns a NEW Snapshot whose Version is the source version
// plus one; the receiver is never modified, so any past snapshot remains
// queryable for as long as the caller holds it.
//
// Friendship is symmetric: b ∈ Friends(a) ⇔ a ∈ Friends(b), for every snapshot.
//
// Persistence policy:
//
//   - Copy-on-write per user record. A mutation copies the top-level user
//     index (pointers only) and clones just the records it touches; every
//     untouched record is shared with the source snapshot.
//   - Observably identical to deep-copying the whole adjacency map on every
//     edit: no query against an older snapshot can see a later change.
//
// History couples a "current" snapshot with a ledger.Ledger so callers can
// list, inspect, and time-travel to any saved version. Writers on a History
// are serialized; readers of published snapshots need no locking.
//
// Methods (Snapshot):
//
//	AddUser(id, name string) (*Snapshot, error)        // O(V) pointer copy
//	AddFriendship(a, b string) (*Snapshot, error)      // O(V + deg(a) + deg(b))
//	RemoveFriendship(a, b string) (*Snapshot, error)   // O(V + deg(a) + deg(b))
//	Friends(id string) []string                        // O(d·log d), sorted
//	MutualFriends(a, b string) []string                // O(min(da, db) + k·log k), sorted
//	HasUser(id string) bool                            // O(1)
//	UserName(id string) (string, bool)                 // O(1)
//	Users() []string                                   // O(V·log V), sorted
//
// Analysis:
//
//	Communities(s *Snapshot) []Community               // union-find replay of all friendships
//	Reach(s *Snapshot, start string, opts ...Option)   // breadth-first degrees of separation
//
// Errors:
//
//	ErrEmptyUserID      - zero-length user id.
//	ErrDuplicateUser    - AddUser on an id already present.
//	ErrMissingUser      - friendship operation or Reach referencing an unknown id.
//	ErrSelfFriendship   - AddFriendship(a, a).
//	ErrVersionNotFound  - History lookup of a version that was never saved.
//	ErrOptionViolation  - invalid Reach option.
//
// There is no RemoveUser: a user disappears only by time-traveling to a
// version that predates it.
package graph
