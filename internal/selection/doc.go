// Package selection implements the multi-region selection algebra: an
// ordered, possibly-overlapping set of byte-offset regions with a
// designated main region, movement and boundary transforms, set-level
// operations, and transport through rope edits.
package selection
