package kex

// A Secret is the output of a completed exchange: the raw fixed-length
// coordinate of the shared group element.
//
// A Secret is NOT a symmetric key. The raw coordinate is not uniformly
// distributed; pass it through a key-derivation step (the kdf package)
// before using it as key material.
type Secret struct {
	data []byte
}

func newSecret(data []byte) *Secret {
	return &Secret{data: data}
}

// Len returns the length of the secret in bytes.
func (s *Secret) Len() int {
	return len(s.data)
}

// Reveal returns the raw secret bytes. The slice aliases the Secret's
// backing memory: it goes to zero when Zeroize is called, and must not
// outlive the value it was meant to derive.
func (s *Secret) Reveal() []byte {
	return s.data
}

// Zeroize overwrites the secret's backing memory. The Secret is
// unusable afterwards.
func (s *Secret) Zeroize() {
	zero(s.data)
	s.data = nil
}

// String returns a redacted placeholder so a Secret cannot leak through
// logging or formatted output.
func (s *Secret) String() string {
	return "kex.Secret{---}"
}
