package alloc

import (
	"fmt"
	"unsafe"
)

// Heap is an Allocator backed by the Go runtime.
//
// Alignment is achieved by over-allocating and reslicing to the first
// aligned offset; the underlying array stays reachable through the returned
// slice. Free is a no-op because the garbage collector reclaims the memory
// once the last reference drops.
type Heap struct{}

// NewHeap creates a Heap allocator.
func NewHeap() *Heap { return &Heap{} }

// Alloc returns exactly size bytes aligned to align.
func (h *Heap) Alloc(size, align int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !validAlign(align) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, align)
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))
	// Keep the capacity open past size so Remap can grow into the slack.
	return buf[off : off+size], nil
}

// Remap grows or shrinks buf within the slack of its original allocation.
// Shrinking always succeeds in place; growing succeeds while the requested
// size still fits the capacity left by Alloc.
func (h *Heap) Remap(buf []byte, size int) ([]byte, bool) {
	if size <= 0 || len(buf) == 0 {
		return nil, false
	}
	if size <= cap(buf) {
		return buf[:size], true
	}
	return nil, false
}

// Free is a no-op; the garbage collector owns the memory.
func (h *Heap) Free([]byte) {}
