package alloc

import (
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the default arena chunk size (64 KiB).
const DefaultChunkSize = 1 << 16

type arenaChunk struct {
	buf []byte
	off int
}

// Arena is a chunked bump allocator. Allocation is a pointer bump within the
// current chunk; when a chunk fills up a new one is appended.
//
// Only the most recent allocation participates in Remap and Free: remapping
// it moves the bump pointer, freeing it rolls the bump pointer back. Freeing
// anything older is a no-op; use Reset to reclaim everything at once.
//
// Not goroutine-safe. Wrap in Locked for concurrent use.
type Arena struct {
	chunks    []arenaChunk
	chunkSize int
	lastBase  unsafe.Pointer // start of the most recent allocation
	lastStart int            // its offset within the current chunk
}

// NewArena creates an Arena with the given chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

// Alloc bumps the current chunk by size bytes at the requested alignment,
// growing the arena with a fresh chunk when the tail does not fit.
func (a *Arena) Alloc(size, align int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !validAlign(align) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, align)
	}
	if size == 0 {
		return nil, nil
	}

	if n := len(a.chunks); n > 0 {
		if b := a.tryAlloc(&a.chunks[n-1], size, align); b != nil {
			return b, nil
		}
	}
	a.grow(size + align)
	return a.tryAlloc(&a.chunks[len(a.chunks)-1], size, align), nil
}

// tryAlloc carves size bytes out of c at the requested absolute alignment,
// or returns nil when the tail is too small.
func (a *Arena) tryAlloc(c *arenaChunk, size, align int) []byte {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	mask := uintptr(align - 1)
	start := int(((base+uintptr(c.off))+mask)&^mask - base)
	if start+size > len(c.buf) {
		return nil
	}
	c.off = start + size
	a.lastBase = unsafe.Pointer(&c.buf[start])
	a.lastStart = start
	return c.buf[start : start+size : start+size]
}

// Remap resizes the most recent allocation by moving the bump pointer.
// It fails for older allocations and when the new size overruns the chunk.
func (a *Arena) Remap(buf []byte, size int) ([]byte, bool) {
	if size <= 0 || len(buf) == 0 || a.lastBase == nil {
		return nil, false
	}
	if unsafe.Pointer(unsafe.SliceData(buf)) != a.lastBase {
		return nil, false
	}
	c := &a.chunks[len(a.chunks)-1]
	if a.lastStart+size > len(c.buf) {
		return nil, false
	}
	c.off = a.lastStart + size
	return c.buf[a.lastStart : a.lastStart+size : a.lastStart+size], true
}

// Free rolls back the bump pointer if buf is the most recent allocation;
// older allocations are reclaimed only by Reset.
func (a *Arena) Free(buf []byte) {
	if len(buf) == 0 || a.lastBase == nil {
		return
	}
	if unsafe.Pointer(unsafe.SliceData(buf)) == a.lastBase {
		a.chunks[len(a.chunks)-1].off = a.lastStart
		a.lastBase = nil
	}
}

// Reset rewinds every chunk, keeping the memory for reuse.
// All previously returned slices become invalid.
func (a *Arena) Reset() {
	for i := range a.chunks {
		a.chunks[i].off = 0
	}
	a.lastBase = nil
	a.lastStart = 0
}

// grow appends a chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, arenaChunk{buf: make([]byte, size)})
}
