// Package nbtdiff computes structural diffs between two NBT trees.
//
// Compounds are diffed by field name and lists by element content, both
// using a diffmatchpatch longest-common-subsequence pass over a
// rune-per-entry encoding of the sequence, the same trick the teacher's
// object differ used for field names.
package nbtdiff
