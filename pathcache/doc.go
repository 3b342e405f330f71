// Package pathcache memoizes grid routes by ordered (start, end) pair.
//
// A Cache answers repeated route requests on an unchanged floor without
// re-running the search. Empty results ("no route") are cached too, so an
// unreachable pair is searched once. Keys are ordered: (a,b) and (b,a) are
// distinct entries even though their lengths agree.
//
// Invalidation
//
//	Entries are valid only for the grid they were computed against. Call
//	Invalidate when the floor changes; GetOrCompute also clears itself when
//	handed a different *gridgraph.Grid than the one it was filled with.
//	There is no eviction and no TTL: a floor has at most (walkable cells)²
//	pairs and sessions are short.
//
// Concurrency
//
//	All methods are safe for concurrent use. Two goroutines missing on the
//	same key may both run the finder; the second store wins and both see an
//	identical route because the finder is deterministic.
package pathcache
