// package kex_k256 implements kex.Scheme for the secp256k1 Koblitz
// curve. The arithmetic comes from btcec.
package kex_k256

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-kex"
	"github.com/brendoncarroll/go-kex/wcurve"
)

type (
	PrivateKey = wcurve.PrivateKey
	PublicKey  = wcurve.PublicKey
)

var _ kex.Scheme[PrivateKey, PublicKey] = Scheme{}

type Scheme struct {
	wcurve.Scheme
}

func New() Scheme {
	return Scheme{wcurve.New(btcec.S256(), "k256")}
}

// ParsePublic parses a 65-byte uncompressed point through btcec, which
// rejects coordinates that do not satisfy the curve equation.
func (s Scheme) ParsePublic(data []byte) (PublicKey, error) {
	if len(data) != s.PublicKeySize() {
		return PublicKey{}, errors.Wrapf(kex.ErrDecode, "wrong length %d", len(data))
	}
	if data[0] != 4 {
		return PublicKey{}, errors.Wrapf(kex.ErrDecode, "not an uncompressed point (prefix %#x)", data[0])
	}
	pub, err := btcec.ParsePubKey(data, btcec.S256())
	if err != nil {
		return PublicKey{}, errors.Wrap(kex.ErrDecode, err.Error())
	}
	return PublicKey{X: pub.X, Y: pub.Y}, nil
}
