package arena

import (
	"math"
	"unsafe"
)

const (
	// baseAlign is the alignment the backing buffer is acquired at.
	// It is at least as strict as the natural alignment of any Go type,
	// so an offset that is a multiple of a type's alignment is aligned
	// at the platform address level too. Requests for a stricter
	// alignment fail with ErrInvalidAlignment.
	baseAlign = 64

	// ptrAlign is the alignment applied to raw byte allocations.
	ptrAlign = unsafe.Sizeof(uintptr(0))

	// maxLayoutSize bounds a representable (size, baseAlign) layout:
	// rounding a larger size up to the base alignment would overflow.
	maxLayoutSize = math.MaxInt - (baseAlign - 1)
)

// alignUp rounds off up to the next multiple of align.
// align must be a power of two.
func alignUp(off, align uintptr) uintptr {
	return (off + align - 1) &^ (align - 1)
}

// reserve computes the placement of a (size, align) request in a buffer
// of the given capacity with the bump cursor at off. It returns the
// aligned start offset and the new cursor position. Pure arithmetic:
// it touches no memory, so callers commit the cursor only on success.
func reserve(off, capacity, size, align uintptr) (aligned, next uintptr, err error) {
	if align == 0 || align&(align-1) != 0 || align > baseAlign {
		return 0, 0, ErrInvalidAlignment
	}
	aligned = alignUp(off, align)
	if aligned < off || size > capacity || aligned > capacity-size {
		return 0, 0, ErrOutOfMemory
	}
	return aligned, aligned + size, nil
}
