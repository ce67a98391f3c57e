// Package heap implements an addressable binary min-heap over integer ids.
//
// Unlike container/heap's lazy "push a duplicate, ignore stale pops" idiom
// (used elsewhere in this module's ancestry for Dijkstra/Prim), Heap offers
// true decrease-key through Update. That requires knowing where each id
// currently lives in the array, so Heap keeps a position index alongside the
// usual key/id slices. The matching engine's Heuristic phase seeds every
// vertex once, keyed by its degree, and repeatedly extracts the minimum; it
// uses only Insert and DeleteMin, not Update.
//
// Ids are the caller's integer identifiers (here, original graph vertices);
// they must be unique and lie in a bounded range known at construction time
// so the position index can be a plain slice rather than a map.
//
// Complexity: Insert/DeleteMin/Update are O(log n); Contains and Size are O(1).
package heap
