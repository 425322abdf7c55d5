package arena

// Ref is a generation-checked handle to a value allocated in an arena.
// The arena bumps its generation on every Reset and Release, so a Ref
// issued before either can be detected as stale instead of silently
// reading reused memory. The zero Ref is stale.
type Ref[T any] struct {
	arena *Arena
	gen   uint64
	ptr   *T
}

// NewRef allocates a zeroed T in the arena and wraps it in a Ref bound
// to the arena's current generation.
func NewRef[T any](a *Arena) (Ref[T], error) {
	p, err := Alloc[T](a)
	if err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{arena: a, gen: a.gen, ptr: p}, nil
}

// Valid reports whether the referenced memory is still live: the arena
// has not been reset or released since the Ref was issued.
func (r Ref[T]) Valid() bool {
	return r.arena != nil && r.arena.mem != nil && r.gen == r.arena.gen
}

// Get returns the referenced value, or nil and false if the Ref is
// stale.
func (r Ref[T]) Get() (*T, bool) {
	if !r.Valid() {
		return nil, false
	}
	return r.ptr, true
}
