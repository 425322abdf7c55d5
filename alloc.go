package arena

import (
	"math"
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T reserved inside the arena.
// The pointer is valid until the next Reset or Release.
// Fails with ErrOutOfMemory if the remaining capacity cannot hold a T
// after alignment padding.
func Alloc[T any](a *Arena) (*T, error) {
	p, err := AllocUninitialized[T](a)
	if err != nil {
		return nil, err
	}
	var zero T
	*p = zero
	return p, nil
}

// AllocUninitialized returns a *T located in the arena without zeroing
// the region. This is faster than Alloc but the contents are whatever a
// previous cycle left there. Ensure proper initialization before use.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		// Zero-size types occupy no arena space.
		return new(T), nil
	}
	off, err := a.allocLayout(size, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&a.mem[off])), nil
}

// AllocSlice reserves n contiguous T slots inside the arena and returns
// them as a slice. The elements are not initialized. n == 0 yields a nil
// slice and consumes no capacity; a negative n, or an n whose total byte
// size overflows, fails with ErrInvalidSize.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return make([]T, n), nil
	}
	if uintptr(n) > math.MaxInt/elemSize {
		return nil, ErrInvalidSize
	}
	off, err := a.allocLayout(uintptr(n)*elemSize, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.mem[off])), n), nil
}

// AllocSliceZeroed is AllocSlice with the reserved region cleared first.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This prevents a heap-backed arena from being garbage collected while
// the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
