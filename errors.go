package kex

import (
	"github.com/pkg/errors"
)

var (
	// ErrRNGExhausted means the entropy source could not supply more bytes.
	// It is fatal for the operation; the engine never retries internally.
	ErrRNGExhausted = errors.New("kex: entropy source exhausted")

	// ErrDecode means peer key bytes were malformed or out of range.
	// The protocol layer may recover by requesting a fresh key; the bad
	// bytes are never substituted with a default.
	ErrDecode = errors.New("kex: invalid public key encoding")

	// ErrInvalidPeerKey means a peer element failed the group-membership
	// check (off-curve, wrong subgroup, or the identity). Treat it as a
	// potential attack and abort the exchange.
	ErrInvalidPeerKey = errors.New("kex: peer key is not a valid group element")

	// ErrDegenerateSecret means the exchange produced the group identity.
	// The attempt is dead; restart with fresh ephemeral material, do not
	// retry with the same keys.
	ErrDegenerateSecret = errors.New("kex: shared secret is the group identity")

	// ErrKeyPairConsumed means a key pair whose private scalar has been
	// destroyed was offered an exchange: an ephemeral pair after its one
	// use, or any pair after Zeroize.
	ErrKeyPairConsumed = errors.New("kex: key pair already consumed")
)
