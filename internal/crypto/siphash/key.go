package siphash

import (
	"encoding/binary"
	"fmt"

	"github.com/educationofjon/bcash-rewrite/internal/util/memzero"
)

const (
	// Key128Size is the byte length of a standard SipHash key.
	Key128Size = 16
	// Key256Size is the byte length of a 256-bit SipHash key.
	Key256Size = 32
)

// ------------- 128-bit -------------

// Key128 is a standard SipHash key: words k0, k1.
type Key128 [2]uint64

// NewKey128 reads a 16-byte buffer as two little-endian words.
func NewKey128(b []byte) (Key128, error) {
	var k Key128
	if len(b) != Key128Size {
		return k, fmt.Errorf("%w: key128: want %d bytes, got %d", ErrInvalidArgument, Key128Size, len(b))
	}
	k[0] = binary.LittleEndian.Uint64(b[0:])
	k[1] = binary.LittleEndian.Uint64(b[8:])
	return k, nil
}

// MustKey128 is NewKey128 for buffers whose size is already known to be right.
func MustKey128(b []byte) Key128 {
	k, err := NewKey128(b)
	if err != nil {
		panic(err)
	}
	return k
}

// Bytes returns the 16-byte little-endian form of k.
func (k Key128) Bytes() []byte {
	out := make([]byte, Key128Size)
	binary.LittleEndian.PutUint64(out[0:], k[0])
	binary.LittleEndian.PutUint64(out[8:], k[1])
	return out
}

// K256 widens k to the 256-bit key that hashes identically.
func (k Key128) K256() Key256 { return Key256{k[0], k[1], k[0], k[1]} }

// Wipe zeroes the key words.
func (k *Key128) Wipe() { memzero.Words(k[:]) }

// ------------- 256-bit -------------

// Key256 is an extended SipHash key: words k0..k3.
type Key256 [4]uint64

// NewKey256 reads a 32-byte buffer as four little-endian words.
func NewKey256(b []byte) (Key256, error) {
	var k Key256
	if len(b) != Key256Size {
		return k, fmt.Errorf("%w: key256: want %d bytes, got %d", ErrInvalidArgument, Key256Size, len(b))
	}
	for i := range k {
		k[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return k, nil
}

// MustKey256 is NewKey256 for buffers whose size is already known to be right.
func MustKey256(b []byte) Key256 {
	k, err := NewKey256(b)
	if err != nil {
		panic(err)
	}
	return k
}

// Bytes returns the 32-byte little-endian form of k.
func (k Key256) Bytes() []byte {
	out := make([]byte, Key256Size)
	for i, w := range k {
		binary.LittleEndian.PutUint64(out[8*i:], w)
	}
	return out
}

// Wipe zeroes the key words.
func (k *Key256) Wipe() { memzero.Words(k[:]) }
