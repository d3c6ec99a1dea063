// Package ledger provides an append-only catalog of immutable versions.
//
// A Ledger maps an integer version id to a snapshot value of any type. It is
// the bookkeeping half of every persistent structure in socialverse: the
// structure produces a new snapshot on each mutation and the caller saves it
// here, so any past state stays addressable for the process lifetime.
//
// Guarantees:
//
//   - Stored snapshots are never mutated by the ledger.
//   - Versions() and All() enumerate ids in ascending order.
//   - Current() reports the id passed to the most recent Save.
//   - Safe for concurrent readers; writers are serialized by an internal RWMutex.
//
// Methods:
//
//	Save(version int, snap T)          // O(1) amortized
//	Get(version int) (T, bool)         // O(1)
//	Current() int                      // O(1)
//	Latest() int                       // O(1), highest id ever saved
//	Versions() []int                   // O(V·log V)
//	All() iter.Seq2[int, T]            // O(V·log V) to start, then O(1) per step
//	Len() int                          // O(1)
//
// There is intentionally no delete: pruning old versions is not supported.
package ledger
