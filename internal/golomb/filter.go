package golomb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/educationofjon/bcash-rewrite/internal/crypto/siphash"
)

var (
	// ErrInvalidParams is returned for unusable coding parameters.
	ErrInvalidParams = errors.New("golomb: invalid parameters")
	// ErrMalformed is returned when a serialized filter does not decode.
	ErrMalformed = errors.New("golomb: malformed filter")
)

// Filter is an immutable Golomb-coded set.
type Filter struct {
	params Params
	n      uint64
	data   []byte // bit stream without the N prefix
}

// Build hashes the distinct items under key and encodes them.
func Build(key siphash.Key128, params Params, items [][]byte) (*Filter, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(items))
	unique := make([][]byte, 0, len(items))
	for _, item := range items {
		if _, ok := seen[string(item)]; ok {
			continue
		}
		seen[string(item)] = struct{}{}
		unique = append(unique, item)
	}

	f := &Filter{params: params, n: uint64(len(unique))}
	if f.n == 0 {
		return f, nil
	}

	values, err := f.hashAll(key, unique)
	if err != nil {
		return nil, err
	}
	slices.Sort(values)

	var w bitWriter
	var last uint64
	for _, v := range values {
		encode(&w, v-last, params.P)
		last = v
	}
	f.data = w.Close()
	return f, nil
}

// FromBytes parses the wire form produced by Bytes.
func FromBytes(params Params, b []byte) (*Filter, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n, size, err := readCompactSize(b)
	if err != nil {
		return nil, err
	}
	f := &Filter{params: params, n: n, data: slices.Clone(b[size:])}

	if n == 0 {
		if len(f.data) != 0 {
			return nil, fmt.Errorf("%w: %d bytes after empty set", ErrMalformed, len(f.data))
		}
		return f, nil
	}
	if _, err := params.modulus(n); err != nil {
		return nil, err
	}

	d := f.decoder()
	for i := uint64(0); i < n; i++ {
		if _, err := d.next(); err != nil {
			return nil, fmt.Errorf("value %d of %d: %w", i, n, err)
		}
	}
	if used := d.r.bytesUsed(); used != len(f.data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(f.data)-used)
	}
	if !d.r.paddingClear() {
		return nil, fmt.Errorf("%w: non-zero padding bits", ErrMalformed)
	}
	return f, nil
}

// N returns the number of distinct items in the set.
func (f *Filter) N() uint64 { return f.n }

// P returns the Rice parameter.
func (f *Filter) P() uint8 { return f.params.P }

// M returns the false-positive modulus.
func (f *Filter) M() uint64 { return f.params.M }

// Bytes returns CompactSize(N) followed by the bit stream.
func (f *Filter) Bytes() []byte {
	out := appendCompactSize(make([]byte, 0, 9+len(f.data)), f.n)
	return append(out, f.data...)
}

// Match reports whether item may be in the set. False means it is not.
func (f *Filter) Match(key siphash.Key128, item []byte) (bool, error) {
	if f.n == 0 {
		return false, nil
	}
	target, err := f.hash(key, item)
	if err != nil {
		return false, err
	}

	d := f.decoder()
	for i := uint64(0); i < f.n; i++ {
		v, err := d.next()
		if err != nil {
			return false, err
		}
		if v == target {
			return true, nil
		}
		if v > target {
			return false, nil
		}
	}
	return false, nil
}

// MatchAny reports whether any of items may be in the set.
func (f *Filter) MatchAny(key siphash.Key128, items [][]byte) (bool, error) {
	if f.n == 0 || len(items) == 0 {
		return false, nil
	}
	targets, err := f.hashAll(key, items)
	if err != nil {
		return false, err
	}
	slices.Sort(targets)

	d := f.decoder()
	v, err := d.next()
	if err != nil {
		return false, err
	}
	decoded := uint64(1)
	for _, t := range targets {
		for v < t {
			if decoded == f.n {
				return false, nil
			}
			if v, err = d.next(); err != nil {
				return false, err
			}
			decoded++
		}
		if v == t {
			return true, nil
		}
	}
	return false, nil
}

func (f *Filter) hash(key siphash.Key128, item []byte) (uint64, error) {
	m, err := f.params.modulus(f.n)
	if err != nil {
		return 0, err
	}
	return siphash.Mod(item, key, m)
}

func (f *Filter) hashAll(key siphash.Key128, items [][]byte) ([]uint64, error) {
	m, err := f.params.modulus(f.n)
	if err != nil {
		return nil, err
	}
	values := make([]uint64, len(items))
	for i, item := range items {
		if values[i], err = siphash.Mod(item, key, m); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (f *Filter) decoder() *decoder {
	return &decoder{r: bitReader{data: f.data}, p: f.params.P}
}

// encode writes one Golomb-Rice coded delta.
func encode(w *bitWriter, delta uint64, p uint8) {
	for q := delta >> p; q > 0; q-- {
		w.WriteBit(1)
	}
	w.WriteBit(0)
	w.WriteBits(delta, uint(p))
}

// decoder yields the running sum of the coded deltas.
type decoder struct {
	r    bitReader
	p    uint8
	last uint64
}

func (d *decoder) next() (uint64, error) {
	var q uint64
	for {
		bit, err := d.r.ReadBit()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated quotient", ErrMalformed)
		}
		if bit == 0 {
			break
		}
		q++
	}
	if q > uint64(math.MaxUint64)>>d.p {
		return 0, fmt.Errorf("%w: quotient overflow", ErrMalformed)
	}
	rem, err := d.r.ReadBits(uint(d.p))
	if err != nil {
		return 0, fmt.Errorf("%w: truncated remainder", ErrMalformed)
	}
	delta := q<<d.p | rem
	if d.last > math.MaxUint64-delta {
		return 0, fmt.Errorf("%w: value overflow", ErrMalformed)
	}
	d.last += delta
	return d.last, nil
}

// ------------- CompactSize -------------

func appendCompactSize(b []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(b, byte(n))
	case n <= math.MaxUint16:
		return binary.LittleEndian.AppendUint16(append(b, 0xfd), uint16(n))
	case n <= math.MaxUint32:
		return binary.LittleEndian.AppendUint32(append(b, 0xfe), uint32(n))
	default:
		return binary.LittleEndian.AppendUint64(append(b, 0xff), n)
	}
}

// readCompactSize returns the value and its encoded size. Non-canonical
// encodings are rejected.
func readCompactSize(b []byte) (uint64, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: missing item count", ErrMalformed)
	}

	var (
		n     uint64
		size  int
		least uint64
	)
	switch b[0] {
	case 0xfd:
		size, least = 3, 0xfd
	case 0xfe:
		size, least = 5, math.MaxUint16+1
	case 0xff:
		size, least = 9, math.MaxUint32+1
	default:
		return uint64(b[0]), 1, nil
	}
	if len(b) < size {
		return 0, 0, fmt.Errorf("%w: truncated item count", ErrMalformed)
	}
	switch size {
	case 3:
		n = uint64(binary.LittleEndian.Uint16(b[1:]))
	case 5:
		n = uint64(binary.LittleEndian.Uint32(b[1:]))
	default:
		n = binary.LittleEndian.Uint64(b[1:])
	}
	if n < least {
		return 0, 0, fmt.Errorf("%w: non-canonical item count", ErrMalformed)
	}
	return n, size, nil
}
