package kex

import (
	"io"
)

// A KeyPair is a private scalar and its public group element on one
// curve. The private half never leaves the KeyPair: it is consumed by
// Derive and destroyed by Zeroize.
//
// A KeyPair is not safe for concurrent use. Instances are cheap to
// create per exchange; confine each one to a single goroutine or guard
// it externally.
type KeyPair[Private, Public any] struct {
	scheme   Scheme[Private, Public]
	priv     Private
	pub      Public
	static   bool
	consumed bool
}

// Generate creates an ephemeral key pair: it may perform exactly one
// exchange, after which the private scalar is zeroized.
func Generate[Private, Public any](sch Scheme[Private, Public], rng io.Reader) (*KeyPair[Private, Public], error) {
	return generate(sch, rng, false)
}

// GenerateStatic creates a static key pair. It may be passed to Derive
// any number of times with different peers; rotating it is the
// caller's policy.
func GenerateStatic[Private, Public any](sch Scheme[Private, Public], rng io.Reader) (*KeyPair[Private, Public], error) {
	return generate(sch, rng, true)
}

func generate[Private, Public any](sch Scheme[Private, Public], rng io.Reader, static bool) (*KeyPair[Private, Public], error) {
	pub, priv, err := sch.Generate(rng)
	if err != nil {
		sch.Zeroize(&priv)
		return nil, err
	}
	return &KeyPair[Private, Public]{
		scheme: sch,
		priv:   priv,
		pub:    pub,
		static: static,
	}, nil
}

// Public returns a copy of the public element. It is safe to transmit.
func (kp *KeyPair[Private, Public]) Public() Public {
	return kp.pub
}

// AppendPublic appends the wire encoding of the public element to out.
func (kp *KeyPair[Private, Public]) AppendPublic(out []byte) []byte {
	return AppendPublic(out, kp.scheme, &kp.pub)
}

// Static reports whether the key pair was designated for reuse.
func (kp *KeyPair[Private, Public]) Static() bool {
	return kp.static
}

// Derive performs the exchange between kp's private scalar and a peer's
// public element, and returns the shared secret.
//
// peer is validated before use; elements that fail the membership check
// are rejected with ErrInvalidPeerKey. If the product is the group
// identity the exchange fails with ErrDegenerateSecret. A failed
// exchange never produces a Secret.
//
// An ephemeral kp is consumed by its first Derive: the private scalar
// is zeroized whether the exchange succeeded or not, and later calls
// return ErrKeyPairConsumed. A static kp mutates no state and may be
// reused.
func (kp *KeyPair[Private, Public]) Derive(peer *Public) (*Secret, error) {
	if kp.consumed {
		return nil, ErrKeyPairConsumed
	}
	if !kp.static {
		defer kp.Zeroize()
	}
	if err := kp.scheme.Validate(peer); err != nil {
		return nil, err
	}
	dst := make([]byte, kp.scheme.SharedSize())
	if err := kp.scheme.ComputeShared(dst, &kp.priv, peer); err != nil {
		zero(dst)
		return nil, err
	}
	return newSecret(dst), nil
}

// Zeroize overwrites the private scalar's backing memory and marks the
// key pair consumed. It is idempotent and runs on every exit path of an
// ephemeral Derive.
func (kp *KeyPair[Private, Public]) Zeroize() {
	if kp.consumed {
		return
	}
	kp.consumed = true
	kp.scheme.Zeroize(&kp.priv)
}
