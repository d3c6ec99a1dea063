// File: snapshot.go
// Role: Immutable friendship snapshot and its copy-on-write mutations.
// Determinism:
//   - Users(), Friends() and MutualFriends() return ids sorted ascending.
// Concurrency:
//   - A published Snapshot is never written again; any number of goroutines may read it.
//   - Mutations allocate a fresh Snapshot and never touch the receiver.

package graph

import (
	"fmt"
	"sort"
)

// userRecord is the per-user adjacency entry. It is frozen once the owning
// snapshot is returned to a caller; later snapshots clone before writing.
type userRecord struct {
	name    string
	friends map[string]struct{}
}

// clone returns a record with its own friend set.
func (r *userRecord) clone() *userRecord {
	friends := make(map[string]struct{}, len(r.friends)+1)
	for id := range r.friends {
		friends[id] = struct{}{}
	}

	return &userRecord{name: r.name, friends: friends}
}

// Snapshot is one immutable version of the friendship graph.
type Snapshot struct {
	version int
	users   map[string]*userRecord
}

// Empty returns the version-0 snapshot with no users.
func Empty() *Snapshot {
	return &Snapshot{users: make(map[string]*userRecord)}
}

// derive returns a successor snapshot with version+1 that shares every user
// record with s. Callers must clone a record via touch before mutating it.
func (s *Snapshot) derive() *Snapshot {
	users := make(map[string]*userRecord, len(s.users)+1)
	for id, rec := range s.users {
		users[id] = rec
	}

	return &Snapshot{version: s.version + 1, users: users}
}

// touch replaces the shared record of id with a private clone and returns it.
func (s *Snapshot) touch(id string) *userRecord {
	rec := s.users[id].clone()
	s.users[id] = rec

	return rec
}

// Rebase returns a snapshot with identical adjacency published under version.
// All user records are shared with s. It is how History re-publishes an old
// snapshot as a new version during time travel.
func (s *Snapshot) Rebase(version int) *Snapshot {
	out := s.derive()
	out.version = version

	return out
}

// Version returns the snapshot's version number.
func (s *Snapshot) Version() int { return s.version }

// AddUser returns a new snapshot containing id with the given display name and no friends.
//
// Implementation:
//   - Stage 1: Reject empty ids (ErrEmptyUserID) and existing ids (ErrDuplicateUser).
//   - Stage 2: Derive a successor that shares all existing records and insert a fresh one.
//
// The duplicate guard keeps symmetry intact: overwriting a record would drop
// its friend set while the friends still point back at it.
//
// Complexity: O(V) pointer copy.
func (s *Snapshot) AddUser(id, name string) (*Snapshot, error) {
	if id == "" {
		return nil, ErrEmptyUserID
	}
	if _, exists := s.users[id]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateUser, id)
	}

	next := s.derive()
	next.users[id] = &userRecord{name: name, friends: make(map[string]struct{})}

	return next, nil
}

// AddFriendship returns a new snapshot in which a and b are friends.
//
// Implementation:
//   - Stage 1: Verify both endpoints exist (ErrMissingUser) and differ (ErrSelfFriendship).
//   - Stage 2: Derive a successor; clone only the two touched records and link them both ways.
//
// Adding an existing friendship still produces a new version with identical adjacency.
//
// Complexity: O(V + deg(a) + deg(b)).
func (s *Snapshot) AddFriendship(a, b string) (*Snapshot, error) {
	if err := s.requireUsers(a, b); err != nil {
		return nil, err
	}
	if a == b {
		return nil, fmt.Errorf("%w: %q", ErrSelfFriendship, a)
	}

	next := s.derive()
	next.touch(a).friends[b] = struct{}{}
	next.touch(b).friends[a] = struct{}{}

	return next, nil
}

// RemoveFriendship returns a new snapshot in which a and b are no longer friends.
// Removing a friendship that does not exist is not an error: the result has
// the same adjacency and the next version number.
//
// Complexity: O(V + deg(a) + deg(b)).
func (s *Snapshot) RemoveFriendship(a, b string) (*Snapshot, error) {
	if err := s.requireUsers(a, b); err != nil {
		return nil, err
	}

	next := s.derive()
	if _, linked := s.users[a].friends[b]; !linked {
		// No edge: nothing to clone, the successor shares every record.
		return next, nil
	}
	delete(next.touch(a).friends, b)
	delete(next.touch(b).friends, a)

	return next, nil
}

// requireUsers reports the first id that is absent, wrapped in ErrMissingUser.
func (s *Snapshot) requireUsers(ids ...string) error {
	for _, id := range ids {
		if _, ok := s.users[id]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingUser, id)
		}
	}

	return nil
}

// HasUser reports whether id exists in this snapshot.
func (s *Snapshot) HasUser(id string) bool {
	_, ok := s.users[id]

	return ok
}

// UserName returns the display name of id.
func (s *Snapshot) UserName(id string) (string, bool) {
	rec, ok := s.users[id]
	if !ok {
		return "", false
	}

	return rec.name, true
}

// Users returns every user id in ascending order.
func (s *Snapshot) Users() []string {
	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Friends returns the sorted friend ids of id; unknown ids yield an empty slice.
func (s *Snapshot) Friends(id string) []string {
	rec, ok := s.users[id]
	if !ok {
		return []string{}
	}

	return sortedKeys(rec.friends)
}

// AreFriends reports whether a and b are friends.
func (s *Snapshot) AreFriends(a, b string) bool {
	rec, ok := s.users[a]
	if !ok {
		return false
	}
	_, ok = rec.friends[b]

	return ok
}

// MutualFriends returns the sorted intersection of the friend sets of a and b.
// It is empty when either user is unknown.
func (s *Snapshot) MutualFriends(a, b string) []string {
	ra, okA := s.users[a]
	rb, okB := s.users[b]
	if !okA || !okB {
		return []string{}
	}
	// Iterate the smaller set.
	if len(ra.friends) > len(rb.friends) {
		ra, rb = rb, ra
	}
	out := make([]string, 0)
	for id := range ra.friends {
		if _, ok := rb.friends[id]; ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Degree returns the number of friends of id (0 for unknown ids).
func (s *Snapshot) Degree(id string) int {
	if rec, ok := s.users[id]; ok {
		return len(rec.friends)
	}

	return 0
}

// UserCount returns the number of users.
func (s *Snapshot) UserCount() int { return len(s.users) }

// FriendshipCount returns the number of undirected friendships.
func (s *Snapshot) FriendshipCount() int {
	total := 0
	for _, rec := range s.users {
		total += len(rec.friends)
	}

	return total / 2
}

// Info summarizes the snapshot for version listings.
func (s *Snapshot) Info() VersionInfo {
	return VersionInfo{Version: s.version, Users: s.UserCount(), Friendships: s.FriendshipCount()}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
