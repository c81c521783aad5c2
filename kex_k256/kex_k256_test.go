package kex_k256

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-kex"
)

func TestK256(t *testing.T) {
	kex.TestScheme[PrivateKey, PublicKey](t, New())
}

func TestSizes(t *testing.T) {
	s := New()
	require.Equal(t, 65, s.PublicKeySize())
	require.Equal(t, 32, s.SharedSize())
}

func TestParseRejectsOffCurve(t *testing.T) {
	s := New()
	data := make([]byte, s.PublicKeySize())
	data[0] = 4
	for i := 1; i < len(data); i++ {
		data[i] = byte(i)
	}
	_, err := s.ParsePublic(data)
	require.ErrorIs(t, err, kex.ErrDecode)
}

// Full exchange: both parties derive the same 32-byte secret, and
// flipping one bit of a peer key never reproduces it.
func TestExchange(t *testing.T) {
	s := New()
	rng := mrand.New(mrand.NewSource(42))

	alice, err := kex.Generate[PrivateKey, PublicKey](s, rng)
	require.NoError(t, err)
	bob, err := kex.Generate[PrivateKey, PublicKey](s, rng)
	require.NoError(t, err)

	aliceWire := alice.AppendPublic(nil)
	bobWire := bob.AppendPublic(nil)
	require.Len(t, aliceWire, 65)

	alicePeer, err := kex.ParsePeer[PrivateKey, PublicKey](s, bobWire)
	require.NoError(t, err)
	bobPeer, err := kex.ParsePeer[PrivateKey, PublicKey](s, aliceWire)
	require.NoError(t, err)

	aliceSecret, err := alice.Derive(alicePeer)
	require.NoError(t, err)
	bobSecret, err := bob.Derive(bobPeer)
	require.NoError(t, err)

	require.Equal(t, 32, aliceSecret.Len())
	require.Equal(t, aliceSecret.Reveal(), bobSecret.Reveal())
}

func TestExchangeBitFlip(t *testing.T) {
	s := New()
	rng := mrand.New(mrand.NewSource(43))

	alice, err := kex.GenerateStatic[PrivateKey, PublicKey](s, rng)
	require.NoError(t, err)
	bob, err := kex.GenerateStatic[PrivateKey, PublicKey](s, rng)
	require.NoError(t, err)

	bobPub := bob.Public()
	baseline, err := alice.Derive(&bobPub)
	require.NoError(t, err)

	n := 10000
	if testing.Short() {
		n = 200
	}
	wire := bob.AppendPublic(nil)
	for i := 0; i < n; i++ {
		flipped := make([]byte, len(wire))
		copy(flipped, wire)
		bit := uint(mrand.New(mrand.NewSource(int64(i))).Intn(8 * len(flipped)))
		flipped[bit/8] ^= 1 << (bit % 8)

		peer, err := kex.ParsePeer[PrivateKey, PublicKey](s, flipped)
		if err != nil {
			continue
		}
		secret, err := alice.Derive(peer)
		require.NoError(t, err)
		require.NotEqual(t, baseline.Reveal(), secret.Reveal())
	}
}
