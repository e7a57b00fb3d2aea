package siphash

import (
	"encoding/binary"
	"hash"
)

// Size is the digest size in bytes.
const Size = 8

type digest struct {
	key   Key128
	s     state
	block [BlockSize]byte
	off   int
	n     uint64
}

// New returns a streaming hash.Hash64 whose Sum64 equals Sum of
// everything written since the last Reset.
func New(key Key128) hash.Hash64 {
	d := &digest{key: key}
	d.Reset()
	return d
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.s = d.key.initial()
	d.off = 0
	d.n = 0
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	d.n += uint64(n)

	if d.off > 0 {
		c := copy(d.block[d.off:], p)
		d.off += c
		p = p[c:]
		if d.off < BlockSize {
			return n, nil
		}
		d.s.compress(binary.LittleEndian.Uint64(d.block[:]))
		d.off = 0
	}

	p = d.s.blocks(p)
	d.off = copy(d.block[:], p)
	return n, nil
}

// Sum64 does not change the digest state.
func (d *digest) Sum64() uint64 {
	s := d.s
	s.compress(lastBlock(d.block[:d.off], d.n))
	return s.finalize()
}

func (d *digest) Sum(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, d.Sum64())
}
