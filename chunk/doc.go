// Package chunk splits formatted document text into bounded segments sized
// for the embedding provider.
//
// The splitter is a pure function. Determinism is load-bearing: vector point
// identities are derived from chunk positions, so the same text must always
// produce the same chunk sequence.
package chunk
