package kex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecretRedacted(t *testing.T) {
	s := newSecret([]byte{1, 2, 3})
	require.Equal(t, "kex.Secret{---}", s.String())
	require.NotContains(t, fmt.Sprintf("%v %s %+v", s, s, s), "1")
}

func TestSecretZeroize(t *testing.T) {
	s := newSecret([]byte{1, 2, 3})
	require.Equal(t, 3, s.Len())
	alias := s.Reveal()
	s.Zeroize()
	require.Equal(t, []byte{0, 0, 0}, alias)
	require.Equal(t, 0, s.Len())
}
