// package rng provides a seedable CSPRNG for drawing private scalars.
//
// The output is the keystream of ChaCha20 under the seeded key. The
// stream only moves forward: every Read consumes keystream, so two
// scalars can never be drawn from the same state.
package rng

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// SeedSize is the number of seed bytes consumed by New and Reseed.
const SeedSize = chacha20.KeySize

type Seed = [SeedSize]byte

// An RNG is a deterministic random byte stream seeded from an entropy
// source. It is not safe for concurrent use; create one per caller or
// guard it externally.
type RNG struct {
	cipher *chacha20.Cipher
}

var _ io.Reader = &RNG{}

// New returns an RNG seeded with seed. The same seed produces the same
// stream; the seed must come from a real entropy source outside of
// tests.
func New(seed Seed) *RNG {
	r := &RNG{}
	r.rekey(seed)
	return r
}

// FromEntropy seeds an RNG by reading SeedSize bytes from src,
// typically crypto/rand.Reader.
func FromEntropy(src io.Reader) (*RNG, error) {
	var seed Seed
	if _, err := io.ReadFull(src, seed[:]); err != nil {
		return nil, errors.Wrap(err, "rng: reading seed")
	}
	r := New(seed)
	zero(seed[:])
	return r, nil
}

// Read fills p with keystream bytes. It never fails and never returns
// a short read.
func (r *RNG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Reseed replaces the RNG's key with a mix of fresh seed material and
// the current keystream. The old key is unrecoverable afterwards, so
// reseeding also acts as a forward-security ratchet.
func (r *RNG) Reseed(seed Seed) {
	var mix [SeedSize]byte
	r.Read(mix[:])

	var key Seed
	h := sha3.NewShake256()
	h.Write(mix[:])
	h.Write(seed[:])
	h.Read(key[:])

	r.rekey(key)
	zero(mix[:])
	zero(key[:])
}

func (r *RNG) rekey(key Seed) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}
	r.cipher = c
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
