//go:build unix

package arena

import "golang.org/x/sys/unix"

// acquire maps size bytes of anonymous private memory. The mapping is
// page-aligned, which satisfies baseAlign.
func acquire(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// release unmaps a buffer previously returned by acquire. The slice
// must be the identical, untrimmed mapping.
func release(mem []byte) {
	_ = unix.Munmap(mem)
}
