package graph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialverse/graph"
)

// Common user ids used across graph tests.
const (
	UserAnn  = "1"
	UserBo   = "2"
	UserCy   = "3"
	UserDee  = "4"
	UserEve  = "5"
	UserNone = "404"
)

// buildSnapshot adds users in order and then the given friendships, failing the test on any error.
func buildSnapshot(t *testing.T, users map[string]string, friendships [][2]string) *graph.Snapshot {
	t.Helper()
	s := graph.Empty()
	var err error
	for _, id := range sortedIDs(users) {
		s, err = s.AddUser(id, users[id])
		require.NoError(t, err)
	}
	for _, f := range friendships {
		s, err = s.AddFriendship(f[0], f[1])
		require.NoError(t, err)
	}

	return s
}

func sortedIDs(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// requireSymmetric asserts b ∈ Friends(a) ⇔ a ∈ Friends(b) for every user of s.
func requireSymmetric(t *testing.T, s *graph.Snapshot) {
	t.Helper()
	for _, a := range s.Users() {
		for _, b := range s.Friends(a) {
			require.True(t, s.AreFriends(b, a), "asymmetric friendship %s→%s at v%d", a, b, s.Version())
		}
	}
}

// fiveUsers is a small fixture: 1-2-3 chain, 4 isolated, 5 friends with 1.
func fiveUsers(t *testing.T) *graph.Snapshot {
	t.Helper()

	return buildSnapshot(t,
		map[string]string{UserAnn: "Ann", UserBo: "Bo", UserCy: "Cy", UserDee: "Dee", UserEve: "Eve"},
		[][2]string{{UserAnn, UserBo}, {UserBo, UserCy}, {UserAnn, UserEve}},
	)
}
