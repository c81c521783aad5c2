// package wcurve implements kex.Scheme for short-Weierstrass curves in
// terms of elliptic.Curve, which supplies the group arithmetic.
// kex_k256 and kex_p384 are thin wrappers around this package.
package wcurve

import (
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-kex"
)

// maxScalarDraws bounds the rejection-sampling loop so a broken entropy
// source that only produces out-of-range values cannot spin forever.
const maxScalarDraws = 256

// A PrivateKey is a scalar in [1, order-1], stored big-endian at the
// curve's field width.
type PrivateKey struct {
	d []byte
}

// A PublicKey is an affine point on the curve.
type PublicKey struct {
	X, Y *big.Int
}

var _ kex.Scheme[PrivateKey, PublicKey] = Scheme{}

type Scheme struct {
	curve elliptic.Curve
	name  string
}

// New returns a Scheme over curve. The curve must have cofactor 1, so
// that on-curve non-identity points are exactly the prime-order
// subgroup; secp256k1 and the NIST curves qualify.
func New(curve elliptic.Curve, name string) Scheme {
	return Scheme{curve: curve, name: name}
}

func (s Scheme) Name() string {
	return s.name
}

func (s Scheme) Generate(rng io.Reader) (PublicKey, PrivateKey, error) {
	n := s.curve.Params().N
	buf := make([]byte, s.fieldSize())
	for i := 0; i < maxScalarDraws; i++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			kex.Zero(buf)
			return PublicKey{}, PrivateKey{}, errors.WithMessage(kex.ErrRNGExhausted, err.Error())
		}
		// rejection sampling: redraw rather than reduce, so the
		// scalar distribution over [1, N-1] stays uniform
		d := new(big.Int).SetBytes(buf)
		if d.Sign() == 0 || d.Cmp(n) >= 0 {
			continue
		}
		zeroInt(d)
		priv := PrivateKey{d: buf}
		return s.DerivePublic(&priv), priv, nil
	}
	kex.Zero(buf)
	return PublicKey{}, PrivateKey{}, kex.ErrRNGExhausted
}

func (s Scheme) DerivePublic(priv *PrivateKey) PublicKey {
	x, y := s.curve.ScalarBaseMult(priv.d)
	return PublicKey{X: x, Y: y}
}

// Validate checks that pub is on the curve and is not the point at
// infinity. With cofactor 1 that is the whole subgroup check.
func (s Scheme) Validate(pub *PublicKey) error {
	if pub.X == nil || pub.Y == nil {
		return kex.ErrInvalidPeerKey
	}
	if pub.X.Sign() == 0 && pub.Y.Sign() == 0 {
		return kex.ErrInvalidPeerKey
	}
	if !s.curve.IsOnCurve(pub.X, pub.Y) {
		return kex.ErrInvalidPeerKey
	}
	return nil
}

func (s Scheme) ComputeShared(dst []byte, priv *PrivateKey, pub *PublicKey) error {
	if len(dst) != s.SharedSize() {
		panic("wcurve: dst is wrong length")
	}
	x, y := s.curve.ScalarMult(pub.X, pub.Y, priv.d)
	if x.Sign() == 0 && y.Sign() == 0 {
		return kex.ErrDegenerateSecret
	}
	x.FillBytes(dst)
	return nil
}

func (s Scheme) Zeroize(priv *PrivateKey) {
	kex.Zero(priv.d)
}

func (s Scheme) SharedSize() int {
	return s.fieldSize()
}

func (s Scheme) PublicKeySize() int {
	return 1 + 2*s.fieldSize()
}

// MarshalPublic writes the uncompressed SEC1 encoding of pub.
func (s Scheme) MarshalPublic(dst []byte, pub *PublicKey) {
	if len(dst) < s.PublicKeySize() {
		panic("wcurve: dst is too short")
	}
	copy(dst, elliptic.Marshal(s.curve, pub.X, pub.Y))
}

// ParsePublic parses an uncompressed SEC1 encoding. The point at
// infinity has no SEC1 representation, so anything that parses is a
// finite point; membership is still checked separately by Validate.
func (s Scheme) ParsePublic(data []byte) (PublicKey, error) {
	if len(data) != s.PublicKeySize() {
		return PublicKey{}, errors.Wrapf(kex.ErrDecode, "wrong length %d", len(data))
	}
	if data[0] != 4 {
		return PublicKey{}, errors.Wrapf(kex.ErrDecode, "not an uncompressed point (prefix %#x)", data[0])
	}
	x, y := elliptic.Unmarshal(s.curve, data)
	if x == nil || !s.curve.IsOnCurve(x, y) {
		return PublicKey{}, errors.Wrap(kex.ErrDecode, "point is not on the curve")
	}
	return PublicKey{X: x, Y: y}, nil
}

func (s Scheme) fieldSize() int {
	return (s.curve.Params().BitSize + 7) / 8
}

// zeroInt overwrites x's limbs before the value is released. Best
// effort only: math/big controls its own intermediates and may have
// copied the value elsewhere.
func zeroInt(x *big.Int) {
	bits := x.Bits()
	for i := range bits {
		bits[i] = 0
	}
	x.SetInt64(0)
}
