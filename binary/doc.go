// Package binary implements the canonical big-endian NBT wire format: a
// Reader that decodes bytes into *nbt.Node trees, a Writer that encodes
// trees back to bytes, and a Size estimator that computes a conservative
// upper bound on a tree's encoded length without writing it.
//
// Readers and writers are driven by plain io.Reader/io.Writer, matching
// the stream codec's own choice to drive Tony's wire format off explicit
// writer/reader plumbing rather than hiding encoding behind higher-level
// abstractions.
package binary
