package socialverse

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/socialverse/graph"
	"github.com/katalvlaran/socialverse/userindex"
)

// UserProfile is the read model of one user in the current snapshot.
type UserProfile struct {
	ID      string
	Name    string
	Email   string
	Friends []string
}

// AddUser registers a user in the graph and, when uid is a canonical decimal
// number (see userindex.ParseUID), in the ordered index. Other ids, including
// non-canonical numbers such as "05", live in the graph only and are listed
// after the indexed ones by Users. It returns the new graph version.
//
// Errors:
//   - ErrMissingField if uid, name or email is blank.
//   - graph.ErrDuplicateUser if uid already exists.
func (s *Session) AddUser(uid, name, email string) (int, error) {
	const op = "add_user"
	uid, name, email = strings.TrimSpace(uid), strings.TrimSpace(name), strings.TrimSpace(email)
	if uid == "" || name == "" || email == "" {
		return 0, s.violation(op, fmt.Errorf("%w: uid, name and email are required", ErrMissingField))
	}

	snap, err := s.graph.AddUser(uid, name)
	if err != nil {
		return 0, s.violation(op, err)
	}

	s.idxMu.Lock()
	if key, ok := userindex.ParseUID(uid); ok {
		s.index.Insert(key, name, email)
	}
	s.emails[uid] = email
	s.idxMu.Unlock()

	s.metrics.Users.Set(float64(snap.UserCount()))
	s.published(structureGraph, op, snap.Version(), zap.String("uid", uid))
	s.record(ActivityUserAdd, uid, fmt.Sprintf("Added user %s (%s)", name, email))

	return snap.Version(), nil
}

// AddFriendship links a and b and returns the new graph version.
// With NotifyFriends enabled, b receives a FRIENDSHIP notification from a.
func (s *Session) AddFriendship(a, b string) (int, error) {
	const op = "add_friendship"
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	snap, err := s.graph.AddFriendship(a, b)
	if err != nil {
		return 0, s.violation(op, err)
	}
	s.published(structureGraph, op, snap.Version(), zap.String("a", a), zap.String("b", b))
	s.record(ActivityFriendAdd, a, "Added friendship with "+b)
	if s.cfg.NotifyFriends {
		s.Notify(NotificationFriendship, a, fmt.Sprintf("%s and %s are now friends", a, b))
	}

	return snap.Version(), nil
}

// RemoveFriendship unlinks a and b and returns the new graph version.
// Removing a friendship that does not exist still advances the version.
func (s *Session) RemoveFriendship(a, b string) (int, error) {
	const op = "remove_friendship"
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	snap, err := s.graph.RemoveFriendship(a, b)
	if err != nil {
		return 0, s.violation(op, err)
	}
	s.published(structureGraph, op, snap.Version(), zap.String("a", a), zap.String("b", b))
	s.record(ActivityFriendRemove, a, "Removed friendship with "+b)

	return snap.Version(), nil
}

// MutualFriends returns the sorted common friends of a and b in the current snapshot.
func (s *Session) MutualFriends(a, b string) []string {
	return s.graph.Current().MutualFriends(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Communities returns the connected groups of the current snapshot.
func (s *Session) Communities() []graph.Community {
	groups := graph.Communities(s.graph.Current())
	s.record(ActivityCommunityDetect, SystemUser, fmt.Sprintf("Detected %d communities", len(groups)))

	return groups
}

// Reach reports degrees of separation from start in the current snapshot.
func (s *Session) Reach(start string, opts ...graph.Option) (*graph.ReachResult, error) {
	res, err := graph.Reach(s.graph.Current(), strings.TrimSpace(start), opts...)
	if err != nil {
		return nil, s.violation("reach", err)
	}

	return res, nil
}

// UserInfo returns the profile of uid in the current snapshot.
func (s *Session) UserInfo(uid string) (UserProfile, bool) {
	uid = strings.TrimSpace(uid)
	snap := s.graph.Current()
	name, ok := snap.UserName(uid)
	if !ok {
		return UserProfile{}, false
	}
	s.idxMu.RLock()
	email := s.emails[uid]
	s.idxMu.RUnlock()

	return UserProfile{ID: uid, Name: name, Email: email, Friends: snap.Friends(uid)}, true
}

// Users lists the users of the current snapshot. Canonical numeric ids come
// first in index order; other ids follow in ascending string order.
func (s *Session) Users() []UserProfile {
	snap := s.graph.Current()
	out := make([]UserProfile, 0, snap.UserCount())
	seen := make(map[string]bool, snap.UserCount())

	s.idxMu.RLock()
	for e := range s.index.InOrder() {
		uid := strconv.FormatInt(e.UID, 10)
		name, ok := snap.UserName(uid)
		if !ok {
			// Indexed under a version that TimeTravel left behind.
			continue
		}
		seen[uid] = true
		out = append(out, UserProfile{ID: uid, Name: name, Email: s.emails[uid], Friends: snap.Friends(uid)})
	}
	for _, uid := range snap.Users() {
		if seen[uid] {
			continue
		}
		name, _ := snap.UserName(uid)
		out = append(out, UserProfile{ID: uid, Name: name, Email: s.emails[uid], Friends: snap.Friends(uid)})
	}
	s.idxMu.RUnlock()

	return out
}

// GraphVersions lists every saved graph snapshot.
func (s *Session) GraphVersions() []graph.VersionInfo { return s.graph.Versions() }

// GraphAt returns the snapshot saved under version.
func (s *Session) GraphAt(version int) (*graph.Snapshot, bool) { return s.graph.At(version) }

// CurrentGraph returns the working snapshot.
func (s *Session) CurrentGraph() *graph.Snapshot { return s.graph.Current() }

// TimeTravel restores the graph saved under version as a new head version and
// returns that version.
//
// Errors:
//   - graph.ErrVersionNotFound if version was never saved.
func (s *Session) TimeTravel(version int) (int, error) {
	const op = "time_travel"
	snap, err := s.graph.TimeTravel(version)
	if err != nil {
		return 0, s.violation(op, err)
	}
	s.metrics.Users.Set(float64(snap.UserCount()))
	s.published(structureGraph, op, snap.Version(), zap.Int("restored", version))
	s.record(ActivityTimeTravel, SystemUser, fmt.Sprintf("Restored to Version %d", version))

	return snap.Version(), nil
}
