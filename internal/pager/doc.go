// Package pager implements the sliding window that lets a Buffer hold only
// part of a large on-disk file in memory. The window invariant: the rope
// covers exactly [DataStartOffset, DataStartOffset+rope.Len()) of the
// backing file; everything outside that range is unread or evicted.
package pager
