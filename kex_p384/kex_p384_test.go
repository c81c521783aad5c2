package kex_p384

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-kex"
)

func TestP384(t *testing.T) {
	kex.TestScheme[PrivateKey, PublicKey](t, New())
}

func TestSizes(t *testing.T) {
	s := New()
	require.Equal(t, 97, s.PublicKeySize())
	require.Equal(t, 48, s.SharedSize())
}
