// package kex_x25519 implements kex.Scheme for Curve25519.
package kex_x25519

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/curve25519"

	"github.com/brendoncarroll/go-kex"
)

type PrivateKey = [curve25519.ScalarSize]byte

type PublicKey = [curve25519.PointSize]byte

var _ kex.Scheme[PrivateKey, PublicKey] = Scheme{}

type Scheme struct{}

func New() Scheme {
	return Scheme{}
}

func (s Scheme) Name() string {
	return "x25519"
}

func (s Scheme) Generate(rng io.Reader) (PublicKey, PrivateKey, error) {
	priv := PrivateKey{}
	if _, err := io.ReadFull(rng, priv[:]); err != nil {
		return PublicKey{}, PrivateKey{}, errors.WithMessage(kex.ErrRNGExhausted, err.Error())
	}
	// no rejection sampling here: X25519 clamps the scalar, every
	// 32-byte string names a valid key
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	return *(*[32]byte)(pub), priv, nil
}

func (s Scheme) DerivePublic(priv *PrivateKey) PublicKey {
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		panic(err)
	}
	return *(*[32]byte)(pub)
}

// Validate rejects the all-zero encoding. Curve25519 points cannot be
// fully validated from their u-coordinate alone; the remaining
// low-order inputs are caught by the all-zero-output check in
// ComputeShared.
func (s Scheme) Validate(pub *PublicKey) error {
	if *pub == (PublicKey{}) {
		return kex.ErrInvalidPeerKey
	}
	return nil
}

func (s Scheme) ComputeShared(dst []byte, priv *PrivateKey, pub *PublicKey) error {
	if len(dst) != s.SharedSize() {
		panic("kex_x25519: dst is wrong length")
	}
	sh, err := curve25519.X25519(priv[:], pub[:])
	if err != nil {
		// X25519 fails exactly when the output is all zero, i.e. the
		// peer point was low order
		return kex.ErrDegenerateSecret
	}
	copy(dst, sh)
	kex.Zero(sh)
	return nil
}

func (s Scheme) Zeroize(priv *PrivateKey) {
	kex.Zero(priv[:])
}

func (s Scheme) SharedSize() int {
	return 32
}

func (s Scheme) PublicKeySize() int {
	return curve25519.PointSize
}

func (s Scheme) MarshalPublic(dst []byte, pub *PublicKey) {
	if len(dst) < s.PublicKeySize() {
		panic("kex_x25519: dst is too short")
	}
	copy(dst, pub[:])
}

func (s Scheme) ParsePublic(data []byte) (PublicKey, error) {
	if len(data) != curve25519.PointSize {
		return PublicKey{}, errors.Wrapf(kex.ErrDecode, "wrong length %d", len(data))
	}
	return *(*[32]byte)(data), nil
}
