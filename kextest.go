package kex

import (
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScheme runs the properties every Scheme must satisfy. Backend
// packages call it from their own tests.
func TestScheme[Priv, Pub any](t *testing.T, scheme Scheme[Priv, Pub]) {
	generate := func(i int) (Pub, Priv) {
		rng := mrand.New(mrand.NewSource(int64(i)))
		pub, priv, err := scheme.Generate(rng)
		require.NoError(t, err)
		return pub, priv
	}
	t.Run("Generate", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		pub, priv, err := scheme.Generate(rng)
		require.NoError(t, err)
		require.NotNil(t, pub)
		require.NotNil(t, priv)
		require.NoError(t, scheme.Validate(&pub))
	})
	t.Run("DerivePublic", func(t *testing.T) {
		pub, priv := generate(0)
		pub2 := scheme.DerivePublic(&priv)
		requireSameEncoding(t, scheme, &pub, &pub2)
	})
	t.Run("MarshalParsePublic", func(t *testing.T) {
		pub, _ := generate(0)
		data := make([]byte, scheme.PublicKeySize())
		scheme.MarshalPublic(data, &pub)
		pub2, err := scheme.ParsePublic(data)
		require.NoError(t, err)
		requireSameEncoding(t, scheme, &pub, &pub2)
	})
	t.Run("ParseWrongLength", func(t *testing.T) {
		for _, l := range []int{0, 1, scheme.PublicKeySize() - 1, scheme.PublicKeySize() + 1} {
			if l == scheme.PublicKeySize() {
				continue
			}
			_, err := scheme.ParsePublic(make([]byte, l))
			require.Error(t, err, "length %d", l)
		}
	})
	t.Run("Agreement", func(t *testing.T) {
		n := 1000
		if testing.Short() {
			n = 50
		}
		for i := 0; i < n; i++ {
			pubA, privA := generate(2 * i)
			pubB, privB := generate(2*i + 1)
			sharedA := make([]byte, scheme.SharedSize())
			sharedB := make([]byte, scheme.SharedSize())
			require.NoError(t, scheme.ComputeShared(sharedA, &privA, &pubB))
			require.NoError(t, scheme.ComputeShared(sharedB, &privB, &pubA))
			require.Equal(t, sharedA, sharedB)
			require.NotEqual(t, make([]byte, scheme.SharedSize()), sharedA)
		}
	})
	t.Run("KeyPairDerive", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		kpA, err := GenerateStatic(scheme, rng)
		require.NoError(t, err)
		kpB, err := GenerateStatic(scheme, rng)
		require.NoError(t, err)
		pubA, pubB := kpA.Public(), kpB.Public()
		secA, err := kpA.Derive(&pubB)
		require.NoError(t, err)
		secB, err := kpB.Derive(&pubA)
		require.NoError(t, err)
		require.Equal(t, secA.Reveal(), secB.Reveal())
		require.Equal(t, scheme.SharedSize(), secA.Len())
	})
	t.Run("BitFlip", func(t *testing.T) {
		n := 100
		if testing.Short() {
			n = 10
		}
		for i := 0; i < n; i++ {
			_, privA := generate(2 * i)
			pubB, _ := generate(2*i + 1)
			shared := make([]byte, scheme.SharedSize())
			require.NoError(t, scheme.ComputeShared(shared, &privA, &pubB))

			data := make([]byte, scheme.PublicKeySize())
			scheme.MarshalPublic(data, &pubB)
			// skip the top bit of the final byte: RFC 7748 encodings
			// mask it, so flipping it names the same element
			bit := uint(mrand.New(mrand.NewSource(int64(i))).Intn(8*len(data) - 1))
			data[bit/8] ^= 1 << (bit % 8)
			// A flipped encoding either no longer parses/validates, or
			// it names a different element and the secret changes.
			flipped, err := ParsePeer(scheme, data)
			if err != nil {
				continue
			}
			shared2 := make([]byte, scheme.SharedSize())
			if err := scheme.ComputeShared(shared2, &privA, flipped); err != nil {
				continue
			}
			require.NotEqual(t, shared, shared2)
		}
	})
	t.Run("Zeroize", func(t *testing.T) {
		_, priv := generate(0)
		scheme.Zeroize(&priv)
		pub, priv2 := generate(0)
		shared := make([]byte, scheme.SharedSize())
		// a zeroized scalar must not act like the original
		if err := scheme.ComputeShared(shared, &priv, &pub); err == nil {
			shared2 := make([]byte, scheme.SharedSize())
			require.NoError(t, scheme.ComputeShared(shared2, &priv2, &pub))
			require.NotEqual(t, shared2, shared)
		}
	})
}

func requireSameEncoding[Priv, Pub any](t *testing.T, scheme Scheme[Priv, Pub], a, b *Pub) {
	abuf := make([]byte, scheme.PublicKeySize())
	bbuf := make([]byte, scheme.PublicKeySize())
	scheme.MarshalPublic(abuf, a)
	scheme.MarshalPublic(bbuf, b)
	require.Equal(t, abuf, bbuf)
}
