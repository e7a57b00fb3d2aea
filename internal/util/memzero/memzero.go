// Package memzero wipes key material held in byte and word buffers.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Words overwrites every word of w with zero. Key types built from
// uint64 words (SipHash keys) are wiped through here.
//
//go:noinline
func Words(w []uint64) {
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(&w)
}
