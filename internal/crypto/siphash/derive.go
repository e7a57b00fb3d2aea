package siphash

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/educationofjon/bcash-rewrite/internal/util/memzero"
)

// DeriveKey128 expands secret into a Key128 with HKDF-SHA256.
// Distinct info strings give independent keys from the same secret.
func DeriveKey128(secret, salt, info []byte) (Key128, error) {
	var k Key128
	okm, err := expand(secret, salt, info, Key128Size)
	if err != nil {
		return k, err
	}
	defer memzero.Zero(okm)
	return NewKey128(okm)
}

// DeriveKey256 expands secret into a Key256 with HKDF-SHA256.
func DeriveKey256(secret, salt, info []byte) (Key256, error) {
	var k Key256
	okm, err := expand(secret, salt, info, Key256Size)
	if err != nil {
		return k, err
	}
	defer memzero.Zero(okm)
	return NewKey256(okm)
}

func expand(secret, salt, info []byte, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: derive: empty secret", ErrInvalidArgument)
	}
	okm := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), okm); err != nil {
		return nil, fmt.Errorf("derive: hkdf: %w", err)
	}
	return okm, nil
}
