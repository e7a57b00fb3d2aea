package siphash_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/educationofjon/bcash-rewrite/internal/crypto/siphash"
)

func TestNewKey128_LittleEndianWords(t *testing.T) {
	key := refKey()
	if key[0] != 0x0706050403020100 || key[1] != 0x0f0e0d0c0b0a0908 {
		t.Fatalf("got words %#x %#x", key[0], key[1])
	}
	want := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if !bytes.Equal(key.Bytes(), want) {
		t.Fatalf("Bytes: got %x", key.Bytes())
	}
}

func TestNewKey256_RoundTrip(t *testing.T) {
	b := make([]byte, siphash.Key256Size)
	for i := range b {
		b[i] = byte(0xa0 + i)
	}
	key, err := siphash.NewKey256(b)
	if err != nil {
		t.Fatalf("NewKey256: %v", err)
	}
	if key[3] != 0xbfbebdbcbbbab9b8 {
		t.Fatalf("k3 = %#x", key[3])
	}
	if !bytes.Equal(key.Bytes(), b) {
		t.Fatalf("Bytes: got %x, want %x", key.Bytes(), b)
	}
}

func TestNewKey_WrongSize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 32} {
		if _, err := siphash.NewKey128(make([]byte, n)); !errors.Is(err, siphash.ErrInvalidArgument) {
			t.Fatalf("NewKey128(%d bytes): want ErrInvalidArgument, got %v", n, err)
		}
	}
	for _, n := range []int{0, 16, 31, 33} {
		if _, err := siphash.NewKey256(make([]byte, n)); !errors.Is(err, siphash.ErrInvalidArgument) {
			t.Fatalf("NewKey256(%d bytes): want ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestMustKey_PanicsOnWrongSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustKey128 did not panic")
		}
	}()
	siphash.MustKey128(make([]byte, 3))
}

func TestKey_Wipe(t *testing.T) {
	k128 := refKey()
	k128.Wipe()
	if k128 != (siphash.Key128{}) {
		t.Fatalf("Key128 not wiped: %x", k128)
	}

	k256 := siphash.Key256{1, 2, 3, 4}
	k256.Wipe()
	if k256 != (siphash.Key256{}) {
		t.Fatalf("Key256 not wiped: %x", k256)
	}
}

func TestKey128_K256(t *testing.T) {
	k := siphash.Key128{0x11, 0x22}
	if got := k.K256(); got != (siphash.Key256{0x11, 0x22, 0x11, 0x22}) {
		t.Fatalf("K256 = %x", got)
	}
}
