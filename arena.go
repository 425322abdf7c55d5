// Package arena implements a fixed-capacity bump allocator (memory arena).
// Typical usage: create one arena per request or frame, allocate many
// temporary objects from it, then Reset() at the end for O(1) cleanup.
package arena

import "fmt"

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
type Arena struct {
	mem    []byte  // backing memory, nil once released
	offset uintptr // allocation offset within mem
	gen    uint64  // bumped on every Reset and Release; see Ref
}

// New creates an Arena backed by exactly size bytes acquired from the
// platform. The capacity is fixed for the arena's lifetime.
// Fails with ErrInvalidSize if size is not positive, ErrInvalidAlignment
// if the layout is not representable, and ErrAllocationFailed (wrapping
// the cause) if the platform cannot supply the memory.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if uintptr(size) > maxLayoutSize {
		return nil, ErrInvalidAlignment
	}
	mem, err := acquire(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	return &Arena{mem: mem}, nil
}

// AllocBytes reserves n bytes, aligned to pointer size, and returns a
// slice over the reserved region. The slice is valid until the next
// Reset or Release. n == 0 yields a nil slice and consumes no capacity.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n == 0 {
		return nil, nil
	}
	off, err := a.allocLayout(uintptr(n), ptrAlign)
	if err != nil {
		return nil, err
	}
	return a.mem[off : off+uintptr(n) : off+uintptr(n)], nil
}

// allocLayout reserves size bytes at the given alignment and returns the
// byte offset of the reservation. Every allocation routes through here.
// On failure the cursor is unchanged; alignment padding is only charged
// once a later request commits past it.
func (a *Arena) allocLayout(size, align uintptr) (uintptr, error) {
	a.panicIfReleased()
	aligned, next, err := reserve(a.offset, uintptr(len(a.mem)), size, align)
	if err != nil {
		return 0, err
	}
	a.offset = next
	return aligned, nil
}

// Reset rewinds the allocation cursor to zero, reclaiming the whole
// buffer in O(1). The memory is neither zeroed nor released. Every
// previously returned pointer and slice becomes invalid; every Ref
// issued before the call becomes stale.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.offset = 0
	a.gen++
}

// Release returns the backing buffer to the platform and makes the
// arena unusable. Any subsequent allocation or Reset panics.
// Releasing an already-released arena is a no-op.
func (a *Arena) Release() {
	if a.mem == nil {
		return
	}
	release(a.mem)
	a.mem = nil
	a.offset = 0
	a.gen++
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.mem == nil {
		panic("arena: use after Release()")
	}
}
