package golomb

import "errors"

var errEndOfStream = errors.New("end of bit stream")

// bitWriter packs bits MSB first.
type bitWriter struct {
	buf []byte
	cur byte
	n   uint // bits held in cur
}

func (w *bitWriter) WriteBit(bit int) {
	w.cur = w.cur<<1 | byte(bit&1)
	w.n++
	if w.n == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur, w.n = 0, 0
	}
}

// WriteBits writes the low length bits of bits, highest first.
func (w *bitWriter) WriteBits(bits uint64, length uint) {
	for i := length; i > 0; i-- {
		w.WriteBit(int(bits >> (i - 1) & 1))
	}
}

// Close flushes the partial byte, zero padded, and returns the stream.
func (w *bitWriter) Close() []byte {
	if w.n > 0 {
		w.buf = append(w.buf, w.cur<<(8-w.n))
		w.cur, w.n = 0, 0
	}
	return w.buf
}

// bitReader reads bits MSB first.
type bitReader struct {
	data []byte
	pos  uint // next bit
}

func (r *bitReader) ReadBit() (int, error) {
	if r.pos >= uint(len(r.data))*8 {
		return 0, errEndOfStream
	}
	bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
	r.pos++
	return int(bit), nil
}

func (r *bitReader) ReadBits(count uint) (uint64, error) {
	var v uint64
	for i := uint(0); i < count; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v = v<<1 | uint64(bit)
	}
	return v, nil
}

// bytesUsed is the number of bytes touched so far.
func (r *bitReader) bytesUsed() int {
	return int((r.pos + 7) / 8)
}

// paddingClear reports whether the unread bits of the current byte are zero.
func (r *bitReader) paddingClear() bool {
	if r.pos%8 == 0 {
		return true
	}
	return r.data[r.pos/8]<<(r.pos%8) == 0
}
