// Package unionfind provides a disjoint-set (union-find) index over string ids.
//
// It is used to materialize social communities: replay every friendship of a
// graph snapshot through a fresh UnionFind and read back Communities().
//
// Semantics:
//
//   - MakeSet(id) registers id as a singleton root with rank 0. Calling it again
//     on a known id RESETS that id to a singleton (its parent and rank are
//     overwritten). Callers that rebuild communities from scratch rely on this;
//     it is not an idempotent "ensure" operation.
//   - Find(id) returns the set representative and reports false for ids that
//     were never registered. Every node visited on the way to the root is
//     re-pointed directly at the root (full path compression).
//   - Union(a, b) is a no-op when either id is unknown or both share a root.
//     Otherwise the lower-rank root is attached under the higher-rank root; on a
//     tie b's root goes under a's root and a's root rank is incremented.
//     Rank is a tie-break heuristic only, not a depth bound.
//
// Complexity: Find and Union run in O(α(n)) amortized.
//
// UnionFind is not safe for concurrent use. Each rebuild owns its instance.
package unionfind
