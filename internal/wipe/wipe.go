// Package wipe zeroes byte ranges that no longer hold live data.
//
// The overwrite must survive dead-store elimination: the compiler may not
// prove the buffer dead because KeepAlive pins it past the clear.
package wipe

import "runtime"

// Zero overwrites b with zero bytes.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(&b[0])
}
