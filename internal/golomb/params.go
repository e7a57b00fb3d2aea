package golomb

import (
	"fmt"
	"math"
)

const (
	// DefaultP is the Rice parameter of the basic block filter.
	DefaultP = 19
	// DefaultM is the false-positive modulus of the basic block filter.
	DefaultM = 784931

	maxP = 32

	// maxQuotientBits bounds M to 2^(P+maxQuotientBits). The unary
	// quotients of a filter then total at most 2^maxQuotientBits bits per item.
	maxQuotientBits = 8
)

// Params holds the coding parameters of a filter.
type Params struct {
	P uint8  // Golomb-Rice remainder bits, 1..32
	M uint64 // 1/M is the false-positive rate, at most 2^(P+8)
}

// DefaultParams returns the basic block filter parameters.
func DefaultParams() Params {
	return Params{P: DefaultP, M: DefaultM}
}

// Validate checks that p can code a filter.
func (p Params) Validate() error {
	if p.P == 0 || p.P > maxP {
		return fmt.Errorf("%w: P=%d, want 1..%d", ErrInvalidParams, p.P, maxP)
	}
	if p.M == 0 {
		return fmt.Errorf("%w: M=0", ErrInvalidParams)
	}
	if limit := uint64(1) << (p.P + maxQuotientBits); p.M > limit {
		return fmt.Errorf("%w: M=%d exceeds 2^%d for P=%d", ErrInvalidParams, p.M, p.P+maxQuotientBits, p.P)
	}
	return nil
}

// modulus returns N*M, the hash range for n items.
func (p Params) modulus(n uint64) (uint64, error) {
	if n > math.MaxUint64/p.M {
		return 0, fmt.Errorf("%w: N=%d * M=%d overflows", ErrInvalidParams, n, p.M)
	}
	return n * p.M, nil
}
