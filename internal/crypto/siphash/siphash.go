package siphash

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// BlockSize is the SipHash block size in bytes.
const BlockSize = 8

const (
	c0 = 0x736f6d6570736575
	c1 = 0x646f72616e646f6d
	c2 = 0x6c7967656e657261
	c3 = 0x7465646279746573
)

// state holds the four SipHash words v0..v3.
type state struct {
	v0, v1, v2, v3 uint64
}

func newState(k0, k1, k2, k3 uint64) state {
	return state{v0: c0 ^ k0, v1: c1 ^ k1, v2: c2 ^ k2, v3: c3 ^ k3}
}

func (s *state) round() {
	s.v0 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = bits.RotateLeft64(s.v0, 32)

	s.v2 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = bits.RotateLeft64(s.v2, 32)
}

// compress absorbs one message word with two rounds.
func (s *state) compress(m uint64) {
	s.v3 ^= m
	s.round()
	s.round()
	s.v0 ^= m
}

// blocks compresses every full block of p and returns the unconsumed tail.
func (s *state) blocks(p []byte) []byte {
	for len(p) >= BlockSize {
		s.compress(binary.LittleEndian.Uint64(p))
		p = p[BlockSize:]
	}
	return p
}

// finalize runs the four finalization rounds and folds the state.
func (s *state) finalize() uint64 {
	s.v2 ^= 0xff
	s.round()
	s.round()
	s.round()
	s.round()
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// lastBlock builds the final block: up to 7 tail bytes, zero fill and the
// low byte of the total message length in the top byte.
func lastBlock(tail []byte, n uint64) uint64 {
	var b [BlockSize]byte
	copy(b[:], tail)
	b[7] = byte(n)
	return binary.LittleEndian.Uint64(b[:])
}

func sum(s state, data []byte) uint64 {
	tail := s.blocks(data)
	s.compress(lastBlock(tail, uint64(len(data))))
	return s.finalize()
}

// sum64 hashes num as the 8-byte message le64(num).
func sum64(s state, num uint64) uint64 {
	s.compress(num)
	s.compress(8 << 56)
	return s.finalize()
}

// sum32 hashes num as the 4-byte message le32(num).
func sum32(s state, num uint32) uint32 {
	s.compress(uint64(num) | 4<<56)
	return uint32(s.finalize())
}

func (k Key128) initial() state { return newState(k[0], k[1], k[0], k[1]) }

func (k Key256) initial() state { return newState(k[0], k[1], k[2], k[3]) }

// Sum returns the SipHash-2-4 digest of data under key.
func Sum(data []byte, key Key128) uint64 {
	return sum(key.initial(), data)
}

// Sum32 returns the low 32 bits of the SipHash-2-4 digest of the 4-byte
// little-endian encoding of num.
func Sum32(num uint32, key Key128) uint32 {
	return sum32(key.initial(), num)
}

// Sum64 returns the SipHash-2-4 digest of the 8-byte little-endian
// encoding of num.
func Sum64(num uint64, key Key128) uint64 {
	return sum64(key.initial(), num)
}

// Sum32K256 is Sum32 under a 256-bit key.
func Sum32K256(num uint32, key Key256) uint32 {
	return sum32(key.initial(), num)
}

// Sum64K256 is Sum64 under a 256-bit key.
func Sum64K256(num uint64, key Key256) uint64 {
	return sum64(key.initial(), num)
}

// Mod hashes data and maps the digest into [0, m) by keeping the high
// word of digest*m.
func Mod(data []byte, key Key128, m uint64) (uint64, error) {
	if m == 0 {
		return 0, fmt.Errorf("%w: sipmod: zero modulus", ErrInvalidArgument)
	}
	hi, _ := bits.Mul64(Sum(data, key), m)
	return hi, nil
}
