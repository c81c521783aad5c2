package wcurve

import (
	"crypto/elliptic"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-kex"
)

func TestZeroIntClearsLimbs(t *testing.T) {
	x := new(big.Int).SetBytes([]byte{0xde, 0xad, 0xbe, 0xef, 0xde, 0xad, 0xbe, 0xef, 0x01})
	limbs := x.Bits()
	zeroInt(x)
	for i, w := range limbs {
		require.Zero(t, w, "limb %d", i)
	}
	require.Zero(t, x.Sign())
}

func TestSizesTrackFieldWidth(t *testing.T) {
	s := New(elliptic.P256(), "p256")
	require.Equal(t, 32, s.SharedSize())
	require.Equal(t, 65, s.PublicKeySize())

	s = New(elliptic.P384(), "p384")
	require.Equal(t, 48, s.SharedSize())
	require.Equal(t, 97, s.PublicKeySize())
}

func TestDegenerateScalar(t *testing.T) {
	s := New(elliptic.P256(), "p256")
	rng := mrand.New(mrand.NewSource(0))
	pub, _, err := s.Generate(rng)
	require.NoError(t, err)

	// a scalar equal to the group order sends every point to infinity
	d := make([]byte, s.fieldSize())
	s.curve.Params().N.FillBytes(d)
	priv := PrivateKey{d: d}

	dst := make([]byte, s.SharedSize())
	err = s.ComputeShared(dst, &priv, &pub)
	require.ErrorIs(t, err, kex.ErrDegenerateSecret)
}

func TestValidateRejectsOffCurve(t *testing.T) {
	s := New(elliptic.P256(), "p256")
	rng := mrand.New(mrand.NewSource(0))
	pub, _, err := s.Generate(rng)
	require.NoError(t, err)

	bad := PublicKey{X: pub.X, Y: new(big.Int).Add(pub.Y, big.NewInt(1))}
	err = s.Validate(&bad)
	require.ErrorIs(t, err, kex.ErrInvalidPeerKey)
}

func TestValidateRejectsIdentity(t *testing.T) {
	s := New(elliptic.P256(), "p256")
	err := s.Validate(&PublicKey{})
	require.ErrorIs(t, err, kex.ErrInvalidPeerKey)
}

func TestParseRejectsCompressedPrefix(t *testing.T) {
	s := New(elliptic.P256(), "p256")
	rng := mrand.New(mrand.NewSource(0))
	pub, _, err := s.Generate(rng)
	require.NoError(t, err)

	data := make([]byte, s.PublicKeySize())
	s.MarshalPublic(data, &pub)
	data[0] = 2
	_, err = s.ParsePublic(data)
	require.ErrorIs(t, err, kex.ErrDecode)
}

func TestParseRejectsOffCurve(t *testing.T) {
	s := New(elliptic.P256(), "p256")
	rng := mrand.New(mrand.NewSource(0))
	pub, _, err := s.Generate(rng)
	require.NoError(t, err)

	data := make([]byte, s.PublicKeySize())
	s.MarshalPublic(data, &pub)
	// replace y with x so the curve equation no longer holds
	copy(data[1+s.fieldSize():], data[1:1+s.fieldSize()])
	_, err = s.ParsePublic(data)
	require.ErrorIs(t, err, kex.ErrDecode)
}
