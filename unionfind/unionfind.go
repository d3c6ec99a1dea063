package unionfind

import "sort"

// UnionFind tracks which ids belong to the same group.
type UnionFind struct {
	parent map[string]string // parent[id] == id for roots
	rank   map[string]int
}

// New returns an empty UnionFind.
func New() *UnionFind {
	return &UnionFind{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

// MakeSet registers id as its own root with rank 0.
// Calling it on a known id resets that id to a singleton; any ids that pointed
// through it keep their parent pointers, so callers rebuilding from scratch
// should start from New.
// Complexity: O(1).
func (uf *UnionFind) MakeSet(id string) {
	uf.parent[id] = id
	uf.rank[id] = 0
}

// Has reports whether id was registered with MakeSet.
func (uf *UnionFind) Has(id string) bool {
	_, ok := uf.parent[id]

	return ok
}

// Find returns the representative of id's set, compressing the visited path.
// ok is false when id was never registered.
//
// Steps:
//  1. Reject ids that were never passed to MakeSet.
//  2. Walk parent pointers up to the root (parent[root] == root).
//  3. Walk the same path again and re-point every node straight at the root.
//
// After one Find every node on the path is one hop from its root, so a
// repeated Find terminates after a single lookup.
//
// Complexity: O(α(n)) amortized with Union by rank; iterative, no recursion.
func (uf *UnionFind) Find(id string) (root string, ok bool) {
	// 1. Unknown ids have no set.
	if _, ok = uf.parent[id]; !ok {
		return "", false
	}

	// 2. Walk up to the root.
	root = id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// 3. Full path compression: re-point every visited node at the root.
	for id != root {
		next := uf.parent[id]
		uf.parent[id] = root
		id = next
	}

	return root, true
}

// Union merges the sets containing a and b.
// It reports whether a merge happened.
//
// Steps:
//  1. Resolve both roots; no-op if either id is unknown or both share a root.
//  2. Attach the lower-rank root under the higher-rank root.
//  3. On equal ranks attach b's root under a's root and increment a's rank.
//
// Rank only breaks ties; it is not a bound on tree depth once Find has
// compressed paths.
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(a, b string) bool {
	// 1. Roots (Find compresses along the way).
	rootA, okA := uf.Find(a)
	rootB, okB := uf.Find(b)
	if !okA || !okB || rootA == rootB {
		return false
	}

	switch {
	// 2. Lower rank goes under higher rank; ranks stay unchanged.
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	// 3. Tie: b's root joins a's root, which grows by one rank.
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}

	return true
}

// Connected reports whether a and b are registered and share a root.
func (uf *UnionFind) Connected(a, b string) bool {
	rootA, okA := uf.Find(a)
	rootB, okB := uf.Find(b)

	return okA && okB && rootA == rootB
}

// Len returns the number of registered ids.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	n := 0
	for id, p := range uf.parent {
		if id == p {
			n++
		}
	}

	return n
}

// Parent exposes the raw parent pointer of id without compressing.
// It exists for inspecting convergence after Find.
func (uf *UnionFind) Parent(id string) (string, bool) {
	p, ok := uf.parent[id]

	return p, ok
}

// Rank returns the rank recorded for id.
func (uf *UnionFind) Rank(id string) (int, bool) {
	r, ok := uf.rank[id]

	return r, ok
}

// Communities maps each root to the sorted ids of its set.
// Complexity: O(n·α(n) + n·log n).
func (uf *UnionFind) Communities() map[string][]string {
	out := make(map[string][]string)
	for id := range uf.parent {
		root, _ := uf.Find(id)
		out[root] = append(out[root], id)
	}
	for _, members := range out {
		sort.Strings(members)
	}

	return out
}
