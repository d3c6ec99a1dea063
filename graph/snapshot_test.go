package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/socialverse/graph"
)

type SnapshotSuite struct {
	suite.Suite
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func (s *SnapshotSuite) TestEmptyIsVersionZero() {
	g := graph.Empty()
	s.Require().Zero(g.Version())
	s.Require().Empty(g.Users())
	s.Require().Zero(g.UserCount())
}

// TestScenarioAddUsersThenFriendship covers the Ann/Bo walkthrough:
// two users at v1 and v2, a friendship at v3, and v2 unchanged afterwards.
func (s *SnapshotSuite) TestScenarioAddUsersThenFriendship() {
	require := s.Require()
	v0 := graph.Empty()
	v1, err := v0.AddUser(UserAnn, "Ann")
	require.NoError(err)
	v2, err := v1.AddUser(UserBo, "Bo")
	require.NoError(err)
	v3, err := v2.AddFriendship(UserAnn, UserBo)
	require.NoError(err)

	require.Equal(1, v1.Version())
	require.Equal(2, v2.Version())
	require.Equal(3, v3.Version())

	require.Equal([]string{UserBo}, v3.Friends(UserAnn))
	require.Equal([]string{UserAnn}, v3.Friends(UserBo))
	require.Empty(v2.Friends(UserAnn), "older snapshot must not observe the later friendship")
	require.False(v1.HasUser(UserBo))
	require.Empty(v1.Friends(UserBo), "unknown user yields an empty friend list")
}

func (s *SnapshotSuite) TestAddUserErrors() {
	require := s.Require()
	g, err := graph.Empty().AddUser(UserAnn, "Ann")
	require.NoError(err)

	_, err = g.AddUser(UserAnn, "Again")
	require.ErrorIs(err, graph.ErrDuplicateUser)

	_, err = g.AddUser("", "Nobody")
	require.ErrorIs(err, graph.ErrEmptyUserID)

	name, ok := g.UserName(UserAnn)
	require.True(ok)
	require.Equal("Ann", name, "failed AddUser must not overwrite the record")
}

func (s *SnapshotSuite) TestFriendshipRequiresBothUsers() {
	require := s.Require()
	g, _ := graph.Empty().AddUser(UserAnn, "Ann")

	_, err := g.AddFriendship(UserAnn, UserNone)
	require.ErrorIs(err, graph.ErrMissingUser)
	_, err = g.AddFriendship(UserNone, UserAnn)
	require.ErrorIs(err, graph.ErrMissingUser)
	_, err = g.RemoveFriendship(UserAnn, UserNone)
	require.ErrorIs(err, graph.ErrMissingUser)
	_, err = g.AddFriendship(UserAnn, UserAnn)
	require.ErrorIs(err, graph.ErrSelfFriendship)

	require.Equal(1, g.Version(), "failed operations publish nothing")
}

func (s *SnapshotSuite) TestRemoveFriendship() {
	require := s.Require()
	g := fiveUsers(s.T())
	before := g.Version()

	removed, err := g.RemoveFriendship(UserBo, UserAnn)
	require.NoError(err)
	require.Equal(before+1, removed.Version())
	require.False(removed.AreFriends(UserAnn, UserBo))
	require.False(removed.AreFriends(UserBo, UserAnn))
	require.True(g.AreFriends(UserAnn, UserBo), "source snapshot untouched")
	requireSymmetric(s.T(), removed)
}

func (s *SnapshotSuite) TestRemoveMissingFriendshipAdvancesVersion() {
	require := s.Require()
	g := fiveUsers(s.T())

	same, err := g.RemoveFriendship(UserAnn, UserDee)
	require.NoError(err, "removing a non-existent friendship is a no-op, not an error")
	require.Equal(g.Version()+1, same.Version())
	for _, id := range g.Users() {
		require.Equal(g.Friends(id), same.Friends(id))
	}
}

func (s *SnapshotSuite) TestAddExistingFriendshipIsIdempotent() {
	require := s.Require()
	g := fiveUsers(s.T())
	again, err := g.AddFriendship(UserAnn, UserBo)
	require.NoError(err)
	require.Equal(g.Friends(UserAnn), again.Friends(UserAnn))
	require.Equal(g.FriendshipCount(), again.FriendshipCount())
}

func (s *SnapshotSuite) TestMutualFriends() {
	require := s.Require()
	g := fiveUsers(s.T())
	g, _ = g.AddFriendship(UserEve, UserCy)

	require.Equal([]string{UserBo, UserEve}, g.MutualFriends(UserAnn, UserCy))
	require.Empty(g.MutualFriends(UserAnn, UserNone))
	require.Empty(g.MutualFriends(UserDee, UserAnn))
}

func (s *SnapshotSuite) TestCountsAndAccessors() {
	require := s.Require()
	g := fiveUsers(s.T())

	require.Equal([]string{UserAnn, UserBo, UserCy, UserDee, UserEve}, g.Users())
	require.Equal(5, g.UserCount())
	require.Equal(3, g.FriendshipCount())
	require.Equal(2, g.Degree(UserAnn))
	require.Zero(g.Degree(UserNone))
	_, ok := g.UserName(UserNone)
	require.False(ok)

	info := g.Info()
	require.Equal(graph.VersionInfo{Version: g.Version(), Users: 5, Friendships: 3}, info)
}

func (s *SnapshotSuite) TestRebaseSharesAdjacency() {
	require := s.Require()
	g := fiveUsers(s.T())
	r := g.Rebase(42)

	require.Equal(42, r.Version())
	for _, id := range g.Users() {
		require.Equal(g.Friends(id), r.Friends(id))
	}
	next, err := r.AddFriendship(UserDee, UserAnn)
	require.NoError(err)
	require.Equal(43, next.Version())
	require.False(g.AreFriends(UserDee, UserAnn))
	require.False(r.AreFriends(UserDee, UserAnn))
}

// TestOldSnapshotsNeverChange records every snapshot's adjacency as it is
// produced and re-checks all of them after the full edit sequence.
func TestOldSnapshotsNeverChange(t *testing.T) {
	type frozen struct {
		snap    *graph.Snapshot
		friends map[string][]string
	}
	capture := func(s *graph.Snapshot) frozen {
		f := frozen{snap: s, friends: map[string][]string{}}
		for _, id := range s.Users() {
			f.friends[id] = s.Friends(id)
		}
		return f
	}

	s := graph.Empty()
	history := []frozen{capture(s)}
	step := func(next *graph.Snapshot, err error) {
		require.NoError(t, err)
		require.Equal(t, s.Version()+1, next.Version(), "versions increase by exactly one")
		s = next
		requireSymmetric(t, s)
		history = append(history, capture(s))
	}

	for _, id := range []string{UserAnn, UserBo, UserCy, UserDee} {
		step(s.AddUser(id, "user-"+id))
	}
	step(s.AddFriendship(UserAnn, UserBo))
	step(s.AddFriendship(UserAnn, UserCy))
	step(s.AddFriendship(UserCy, UserDee))
	step(s.RemoveFriendship(UserAnn, UserBo))
	step(s.RemoveFriendship(UserAnn, UserBo))
	step(s.AddFriendship(UserBo, UserDee))

	for _, f := range history {
		require.Equal(t, len(f.friends), f.snap.UserCount())
		for id, friends := range f.friends {
			require.Equal(t, friends, f.snap.Friends(id), "v%d changed for %s", f.snap.Version(), id)
		}
	}
}
