// Package siphash implements the SipHash-2-4 keyed pseudorandom function
// family used by the node for short IDs, filters and bucket selection.
//
// Contents
//
//   - 128-bit and 256-bit key types, parsed from little-endian byte
//     buffers or derived from secret material (NewKey128, NewKey256,
//     DeriveKey128, DeriveKey256)
//   - SipHash-2-4 over byte slices (Sum) and over fixed-width integers
//     (Sum32, Sum64)
//   - The 256-bit key variants (Sum32K256, Sum64K256)
//   - Range reduction of a digest into [0, m) (Mod)
//   - A streaming hash.Hash64 (New)
//
// # Integer inputs
//
// Sum64 hashes the 8-byte little-endian encoding of its argument and Sum32
// the 4-byte encoding, so Sum64(n, k) == Sum(le64(n), k) and
// Sum32(n, k) == uint32(Sum(le32(n), k)). The 32-bit variants return the
// low half of the 64-bit digest.
//
// # 256-bit keys
//
// The four key words are folded into the four state words in order:
// v0 = c0^k0, v1 = c1^k1, v2 = c2^k2, v3 = c3^k3. This schedule is this
// package's own; no published 256-bit-key SipHash vector exists to
// inherit one from, so digests may differ from other 256-bit-key
// variants. A Key256 of {k0, k1, k0, k1} hashes exactly like the
// Key128 {k0, k1}.
//
// # Range reduction
//
// Mod maps the digest into [0, m) with a 64x64->128 multiply, keeping the
// high word. This avoids the modulo bias of h % m. A zero m is rejected
// with ErrInvalidArgument.
//
// # Security notes
//
// SipHash is a PRF, not a collision resistant hash. Keys should come from
// a CSPRNG or DeriveKey*. Every function is pure and safe for concurrent use.
package siphash
