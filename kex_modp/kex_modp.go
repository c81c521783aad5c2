// package kex_modp implements kex.Scheme for classical Diffie-Hellman
// over a safe-prime field.
package kex_modp

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-kex"
)

const maxScalarDraws = 256

var one = big.NewInt(1)

// A PrivateKey is an exponent in [1, q-1], where q is the order of the
// prime-order subgroup.
type PrivateKey struct {
	x []byte
}

// A PublicKey is a residue mod p.
type PublicKey struct {
	Y *big.Int
}

var _ kex.Scheme[PrivateKey, PublicKey] = Scheme{}

// Scheme performs DH in the order-q subgroup generated by g mod p,
// where p = 2q+1 is a safe prime.
type Scheme struct {
	name string
	p    *big.Int
	g    *big.Int
	q    *big.Int
}

// New returns a Scheme over the group (p, g). p must be a safe prime;
// the subgroup order is taken as q = (p-1)/2.
func New(name string, p, g *big.Int) (Scheme, error) {
	if p.Sign() <= 0 || p.Bit(0) != 1 {
		return Scheme{}, errors.New("kex_modp: modulus must be an odd prime")
	}
	q := new(big.Int).Rsh(new(big.Int).Sub(p, one), 1)
	if !q.ProbablyPrime(20) {
		return Scheme{}, errors.New("kex_modp: (p-1)/2 is not prime, p is not a safe prime")
	}
	pm2 := new(big.Int).Sub(p, big.NewInt(2))
	if g.Cmp(big.NewInt(2)) < 0 || g.Cmp(pm2) > 0 {
		return Scheme{}, errors.New("kex_modp: generator out of range")
	}
	if new(big.Int).Exp(g, q, p).Cmp(one) != 0 {
		return Scheme{}, errors.New("kex_modp: generator is not in the order-q subgroup")
	}
	return Scheme{name: name, p: p, g: g, q: q}, nil
}

func (s Scheme) Name() string {
	return s.name
}

func (s Scheme) Generate(rng io.Reader) (PublicKey, PrivateKey, error) {
	buf := make([]byte, s.scalarSize())
	for i := 0; i < maxScalarDraws; i++ {
		if _, err := io.ReadFull(rng, buf); err != nil {
			kex.Zero(buf)
			return PublicKey{}, PrivateKey{}, errors.WithMessage(kex.ErrRNGExhausted, err.Error())
		}
		// redraw rather than reduce mod q, to avoid modulo bias
		x := new(big.Int).SetBytes(buf)
		inRange := x.Sign() != 0 && x.Cmp(s.q) < 0
		zeroInt(x)
		if !inRange {
			continue
		}
		priv := PrivateKey{x: buf}
		return s.DerivePublic(&priv), priv, nil
	}
	kex.Zero(buf)
	return PublicKey{}, PrivateKey{}, kex.ErrRNGExhausted
}

func (s Scheme) DerivePublic(priv *PrivateKey) PublicKey {
	x := new(big.Int).SetBytes(priv.x)
	y := new(big.Int).Exp(s.g, x, s.p)
	zeroInt(x)
	return PublicKey{Y: y}
}

// Validate checks 2 <= y <= p-2 and that y lies in the order-q
// subgroup (y^q == 1 mod p). The range check alone would still admit
// p-1, the element of order 2 used in small-subgroup confinement.
func (s Scheme) Validate(pub *PublicKey) error {
	y := pub.Y
	if y == nil {
		return kex.ErrInvalidPeerKey
	}
	pm2 := new(big.Int).Sub(s.p, big.NewInt(2))
	if y.Cmp(big.NewInt(2)) < 0 || y.Cmp(pm2) > 0 {
		return kex.ErrInvalidPeerKey
	}
	if new(big.Int).Exp(y, s.q, s.p).Cmp(one) != 0 {
		return kex.ErrInvalidPeerKey
	}
	return nil
}

func (s Scheme) ComputeShared(dst []byte, priv *PrivateKey, pub *PublicKey) error {
	if len(dst) != s.SharedSize() {
		panic("kex_modp: dst is wrong length")
	}
	x := new(big.Int).SetBytes(priv.x)
	z := new(big.Int).Exp(pub.Y, x, s.p)
	zeroInt(x)
	if z.Cmp(one) == 0 {
		return kex.ErrDegenerateSecret
	}
	z.FillBytes(dst)
	zeroInt(z)
	return nil
}

func (s Scheme) Zeroize(priv *PrivateKey) {
	kex.Zero(priv.x)
}

func (s Scheme) SharedSize() int {
	return (s.p.BitLen() + 7) / 8
}

func (s Scheme) PublicKeySize() int {
	return (s.p.BitLen() + 7) / 8
}

func (s Scheme) MarshalPublic(dst []byte, pub *PublicKey) {
	if len(dst) < s.PublicKeySize() {
		panic("kex_modp: dst is too short")
	}
	pub.Y.FillBytes(dst[:s.PublicKeySize()])
}

func (s Scheme) ParsePublic(data []byte) (PublicKey, error) {
	if len(data) != s.PublicKeySize() {
		return PublicKey{}, errors.Wrapf(kex.ErrDecode, "wrong length %d", len(data))
	}
	y := new(big.Int).SetBytes(data)
	if y.Sign() == 0 || y.Cmp(s.p) >= 0 {
		return PublicKey{}, errors.Wrap(kex.ErrDecode, "residue out of range")
	}
	return PublicKey{Y: y}, nil
}

func (s Scheme) scalarSize() int {
	return (s.q.BitLen() + 7) / 8
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
