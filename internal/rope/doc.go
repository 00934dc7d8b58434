// Package rope implements an immutable, persistent byte-sequence rope: a
// balanced tree of bounded byte chunks supporting O(log n) slicing,
// concatenation, and delta application.
//
// Unlike a text rope, chunk boundaries carry no UTF-8 or line-boundary
// constraints — the data is arbitrary binary and may be split anywhere.
package rope
