package arena

import "errors"

// Allocation failures are reported as values; callers are expected to
// match them with errors.Is. Using memory past Reset or Release is a
// caller-contract violation, not an error the arena reports.
var (
	// ErrInvalidSize is returned when constructing an arena with a
	// non-positive size, or when an element count is negative or would
	// overflow count*sizeof(T).
	ErrInvalidSize = errors.New("arena: invalid size")

	// ErrInvalidAlignment is returned when a requested layout cannot be
	// represented: the alignment is zero, not a power of two, or exceeds
	// the alignment the backing buffer was acquired at.
	ErrInvalidAlignment = errors.New("arena: invalid alignment")

	// ErrAllocationFailed is returned when the platform primitive could
	// not supply the backing buffer at construction.
	ErrAllocationFailed = errors.New("arena: failed to allocate memory")

	// ErrOutOfMemory is returned when the remaining capacity cannot hold
	// the requested, aligned allocation. The arena stays usable; the
	// caller may Reset() and retry.
	ErrOutOfMemory = errors.New("arena: out of memory")
)
