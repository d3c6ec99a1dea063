// Package userindex provides an ordered, non-persistent index of users keyed by numeric id.
//
// Index is a plain binary search tree. Mutations are destructive and there is
// no versioning; it is a secondary lookup that shares no state with the
// persistent structures.
//
// Every walk (Insert, Search, Delete, InOrder, Height) is iterative, so
// skewed trees built from sorted input cannot exhaust the call stack.
//
// Ids arrive as strings from callers. ParseUID is the typed gate that decides
// whether an id can be used as an ordered key at all; only canonical decimal
// spellings pass, so a key always formats back to the id it came from.
//
// Index is not safe for concurrent use.
package userindex
