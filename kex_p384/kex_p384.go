// package kex_p384 implements kex.Scheme for NIST P-384.
package kex_p384

import (
	"crypto/elliptic"

	"github.com/brendoncarroll/go-kex/wcurve"
)

type (
	PrivateKey = wcurve.PrivateKey
	PublicKey  = wcurve.PublicKey
)

func New() wcurve.Scheme {
	return wcurve.New(elliptic.P384(), "p384")
}
