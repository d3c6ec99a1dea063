package graph

import (
	"sort"

	"github.com/katalvlaran/socialverse/unionfind"
)

// Communities returns the connected groups of users in s.
//
// Every user is registered in a fresh union-find, every friendship is
// replayed through Union, and the resulting sets are returned sorted by
// root id with members ascending. Users without friends form singleton
// communities. An empty snapshot yields an empty slice.
//
// Complexity: O((V + E)·α(V) + V·log V).
func Communities(s *Snapshot) []Community {
	uf := NewUnionFind(s)
	groups := uf.Communities()

	out := make([]Community, 0, len(groups))
	for root, members := range groups {
		out = append(out, Community{Root: root, Members: members})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Root < out[j].Root })

	return out
}

// NewUnionFind builds a union-find over the users of s with every friendship
// merged. Users are registered and friendships replayed in ascending id
// order, so the chosen roots are deterministic.
func NewUnionFind(s *Snapshot) *unionfind.UnionFind {
	uf := unionfind.New()
	users := s.Users()
	for _, id := range users {
		uf.MakeSet(id)
	}
	for _, id := range users {
		for _, friend := range s.Friends(id) {
			uf.Union(id, friend)
		}
	}

	return uf
}
