package shortid

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/educationofjon/bcash-rewrite/internal/crypto/siphash"
)

// Mask keeps the 48 bits that make up a short ID.
const Mask = 0xffffffffffff

var (
	// ErrCollision is returned when two hashes map to the same short ID.
	ErrCollision = errors.New("shortid: collision")
)

// NewKey derives the short-ID key for a header and announcement nonce.
func NewKey(header []byte, nonce uint64) siphash.Key128 {
	h := sha256.New()
	h.Write(header)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	h.Write(n[:])
	sum := h.Sum(nil)
	return siphash.MustKey128(sum[:siphash.Key128Size])
}

// Compute returns the short ID of a transaction hash.
func Compute(key siphash.Key128, hash []byte) uint64 {
	return siphash.Sum(hash, key) & Mask
}

// Index maps every short ID to its position in hashes.
func Index(key siphash.Key128, hashes [][]byte) (map[uint64]int, error) {
	ids := make(map[uint64]int, len(hashes))
	for i, h := range hashes {
		id := Compute(key, h)
		if j, ok := ids[id]; ok {
			return nil, fmt.Errorf("%w: %012x at %d and %d", ErrCollision, id, j, i)
		}
		ids[id] = i
	}
	return ids, nil
}
