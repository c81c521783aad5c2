// package kdf turns raw exchange output into symmetric key material.
//
// The coordinate bytes produced by kex are not uniformly distributed
// and must not be used as a key directly; run them through Key first.
package kdf

import (
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// Key derives n bytes of key material from secret using HKDF-SHA-256.
// salt may be nil; info binds the key to its purpose and should be
// distinct per use.
func Key(secret, salt, info []byte, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, errors.Wrap(err, "kdf: expanding key")
	}
	return out, nil
}

// Key256 derives a 32-byte key, the common case for AEAD keys.
func Key256(secret, salt, info []byte) ([32]byte, error) {
	var key [32]byte
	out, err := Key(secret, salt, info, len(key))
	if err != nil {
		return key, err
	}
	copy(key[:], out)
	return key, nil
}
