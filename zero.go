package kex

import "runtime"

// zero overwrites b. runtime.KeepAlive stops the compiler from
// optimizing the writes away when b is about to become unreachable.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Zero overwrites sensitive bytes held outside the package's own types.
// Backends use it on scratch buffers that held scalar or coordinate
// material.
func Zero(b []byte) {
	zero(b)
}
