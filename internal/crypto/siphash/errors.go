package siphash

import "errors"

var (
	// ErrInvalidArgument is returned for caller contract violations: a zero
	// modulus, a key buffer of the wrong size or empty secret material.
	ErrInvalidArgument = errors.New("siphash: invalid argument")
)
