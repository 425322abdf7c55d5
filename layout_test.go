package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	tests := []struct {
		off, align, want uintptr
	}{
		{0, 1, 0},
		{7, 1, 7},
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{13, 4, 16},
		{31, 16, 32},
		{63, 64, 64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, alignUp(tt.off, tt.align), "alignUp(%d, %d)", tt.off, tt.align)
	}
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name          string
		off, capacity uintptr
		size, align   uintptr
		aligned, next uintptr
		err           error
	}{
		{"zero offset", 0, 64, 8, 8, 0, 8, nil},
		{"zero size", 32, 64, 0, 8, 32, 32, nil},
		{"padding inserted", 1, 64, 8, 8, 8, 16, nil},
		{"byte alignment", 3, 64, 5, 1, 3, 8, nil},
		{"exact fit", 0, 64, 64, 8, 0, 64, nil},
		{"exact fit after padding", 9, 64, 48, 16, 16, 64, nil},
		{"one byte over", 0, 64, 65, 8, 0, 0, ErrOutOfMemory},
		{"padding pushes over", 57, 64, 8, 8, 0, 0, ErrOutOfMemory},
		{"size exceeds capacity", 0, 8, 16, 8, 0, 0, ErrOutOfMemory},
		{"alignment wraps cursor", ^uintptr(0) - 2, ^uintptr(0), 1, 8, 0, 0, ErrOutOfMemory},
		{"zero alignment", 0, 64, 8, 0, 0, 0, ErrInvalidAlignment},
		{"non power of two alignment", 0, 64, 8, 3, 0, 0, ErrInvalidAlignment},
		{"alignment over base", 0, 64, 8, baseAlign * 2, 0, 0, ErrInvalidAlignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aligned, next, err := reserve(tt.off, tt.capacity, tt.size, tt.align)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.aligned, aligned)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestReserveLeavesCursorToCaller(t *testing.T) {
	// A failed reservation reports an error only; the caller keeps its
	// cursor, so alignment padding is charged when a later request
	// commits past it, never by the failure itself.
	off := uintptr(57)
	_, _, err := reserve(off, 64, 8, 8)
	require.ErrorIs(t, err, ErrOutOfMemory)

	aligned, next, err := reserve(off, 64, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, off, aligned)
	assert.Equal(t, uintptr(64), next)
}
