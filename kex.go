// package kex provides a curve-generic Diffie-Hellman key exchange.
//
// The exchange engine is written once against Scheme and works for any
// group: classical DH over a prime field (kex_modp), secp256k1
// (kex_k256), NIST P-384 (kex_p384), or Curve25519 (kex_x25519).
package kex

import (
	"io"
)

// Scheme is the capability set a curve backend supplies.
// Implementations perform the group arithmetic; the engine in this
// package composes them into key pairs and shared secrets.
type Scheme[Private, Public any] interface {
	// Name returns a short identifier for the scheme e.g. "k256"
	Name() string

	// Generate creates a new private/public key pair using entropy from rng.
	// Private scalars are drawn by rejection sampling against the group
	// order, so the distribution is uniform over [1, order-1].
	Generate(rng io.Reader) (Public, Private, error)
	// DerivePublic returns the public element corresponding to the private scalar
	DerivePublic(*Private) Public

	// Validate checks that pub is a member of the correct subgroup and is
	// not the identity element. It must be called on anything that came
	// from a peer before the element is used in an exchange.
	Validate(pub *Public) error

	// ComputeShared writes the shared group coordinate for (priv, pub) to dst.
	// If dst is not SharedSize(), ComputeShared panics.
	// It returns ErrDegenerateSecret if the product is the identity element.
	//
	// The output is the raw x-coordinate/residue. It is NOT uniformly
	// random and NOT suitable as a symmetric key; callers must run it
	// through a key-derivation step (see the kdf package).
	ComputeShared(dst []byte, priv *Private, pub *Public) error

	// Zeroize overwrites the private scalar's backing memory.
	Zeroize(priv *Private)

	// SharedSize is the number of bytes written by ComputeShared.
	SharedSize() int

	PublicKeySize() int
	// MarshalPublic writes the fixed-length encoding of pub to dst.
	// MarshalPublic panics if dst is not >= PublicKeySize()
	MarshalPublic(dst []byte, pub *Public)
	// ParsePublic attempts to parse a public element from bytes.
	// Malformed or out-of-range encodings fail with an error wrapping
	// ErrDecode; ParsePublic never panics on bad input.
	ParsePublic([]byte) (Public, error)
}

// ParsePeer parses an untrusted public element received from a peer and
// validates its group membership. This is the only safe entry point for
// peer key bytes; unvalidated elements enable small-subgroup and
// invalid-curve attacks.
func ParsePeer[Private, Public any](sch Scheme[Private, Public], data []byte) (*Public, error) {
	pub, err := sch.ParsePublic(data)
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(&pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

// AppendPublic appends the marshaled form of pub to out, using sch to marshal it.
func AppendPublic[Private, Public any](out []byte, sch Scheme[Private, Public], pub *Public) []byte {
	initLen := len(out)
	out = append(out, make([]byte, sch.PublicKeySize())...)
	sch.MarshalPublic(out[initLen:], pub)
	return out
}
