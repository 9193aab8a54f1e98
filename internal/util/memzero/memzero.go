// Package memzero wipes secrets held in byte slices once they are no longer
// needed, such as keys derived from the storage passphrase.
package memzero

import "runtime"

// Zero overwrites every given buffer with zeros.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	runtime.KeepAlive(bufs)
}
