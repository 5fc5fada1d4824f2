package alloc

import "errors"

var (
	// ErrInvalidSize is returned when a negative size is requested.
	ErrInvalidSize = errors.New("alloc: invalid size")
	// ErrInvalidAlignment is returned when the alignment is not a power of
	// two, or exceeds what the allocator can guarantee.
	ErrInvalidAlignment = errors.New("alloc: invalid alignment")
	// ErrUnsupported is returned by constructors on platforms that cannot
	// provide the requested allocator.
	ErrUnsupported = errors.New("alloc: unsupported on this platform")
)

// Allocator allocates, resizes and frees aligned byte ranges.
//
// Alloc may return more memory than requested; len of the returned slice is
// the usable size. Callers must pass slices back to Remap and Free exactly as
// they were returned.
type Allocator interface {
	// Alloc returns at least size bytes whose first byte is aligned to
	// align (a power of two). Returns nil, nil for size 0.
	Alloc(size, align int) ([]byte, error)

	// Remap attempts to resize buf in place. On success the returned slice
	// starts at the same address as buf and has at least size bytes. The
	// second result reports whether the remap happened; on false, buf is
	// untouched and still owned by the caller.
	Remap(buf []byte, size int) ([]byte, bool)

	// Free returns buf to the allocator. buf must be a slice previously
	// returned by Alloc or Remap. Freeing nil is a no-op.
	Free(buf []byte)
}

// Default is the allocator used when none is configured.
var Default Allocator = NewHeap()

func validAlign(align int) bool {
	return align > 0 && align&(align-1) == 0
}
