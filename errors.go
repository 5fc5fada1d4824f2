package ergolist

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityOverflow is returned when a capacity calculation would
	// overflow the platform int.
	ErrCapacityOverflow = errors.New("capacity calculation overflow")
	// ErrInvalidAlignment is returned at construction when the configured
	// alignment is not a power of two or is below the element's natural
	// alignment.
	ErrInvalidAlignment = errors.New("invalid alignment")
	// ErrWriterFull is returned by FixedWriter when a write would exceed the
	// list's current capacity.
	ErrWriterFull = errors.New("writer capacity exceeded")
)

// AllocError indicates the allocator could not satisfy a request.
//
// The allocator's underlying error can be accessed via errors.Unwrap.
type AllocError struct {
	Size  int
	Align int
	cause error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("allocation of %d bytes (align %d) failed: %v", e.Size, e.Align, e.cause)
}

func (e *AllocError) Unwrap() error { return e.cause }
