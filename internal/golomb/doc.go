// Package golomb implements Golomb-coded set filters: compact
// probabilistic sets with no false negatives, used for block filters.
//
// # Construction
//
// Every item is hashed into [0, N*M) with siphash.Mod, where N is the
// number of distinct items and M the inverse false-positive rate. The
// sorted values are delta encoded with Golomb-Rice coding using P
// remainder bits: the quotient d>>P in unary (ones closed by a zero), then
// the low P bits of d, most significant bit first.
//
// # Wire form
//
// A filter serializes as CompactSize(N) followed by the bit stream padded
// with zero bits to a byte boundary.
//
// # Errors
//
// ErrInvalidParams reports unusable P/M values or an N*M overflow.
// ErrMalformed reports a serialized filter that does not decode to exactly
// N values.
package golomb
