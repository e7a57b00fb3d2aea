// Package shortid computes the 6-byte short transaction IDs carried by
// compact block announcements (BIP152).
//
// # Overview
//
// A sender picks a random nonce per announcement. Both sides derive the
// SipHash key from the serialized block header and that nonce:
//
//	k0, k1 = le64(SHA256(header || le64(nonce))[0:16])
//
// Each transaction hash is then reduced to the low 48 bits of its
// SipHash-2-4 digest under that key.
//
// # Errors
//
// ErrCollision is returned by Index when two hashes in one block share a
// short ID. The receiver cannot tell them apart and must request the full
// block instead.
package shortid
