//go:build !unix

package arena

import "unsafe"

// acquire reserves size bytes on the Go heap. The slab is over-sized so
// the returned base can be rounded up to baseAlign.
func acquire(size int) ([]byte, error) {
	slab := make([]byte, size+baseAlign-1)
	base := uintptr(unsafe.Pointer(&slab[0]))
	pad := int(alignUp(base, baseAlign) - base)
	return slab[pad : pad+size : pad+size], nil
}

// release is a no-op for heap-backed buffers; the GC reclaims the slab
// once the arena drops its reference.
func release([]byte) {}
