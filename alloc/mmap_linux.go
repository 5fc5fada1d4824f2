//go:build linux

package alloc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mmap allocates anonymous memory mappings directly from the kernel.
//
// Sizes are rounded up to whole pages, so Alloc commonly returns more than
// requested. Remap uses mremap(2) without MREMAP_MAYMOVE: a successful remap
// is a true in-place resize, growing or shrinking the mapping while every
// existing byte keeps its address.
//
// Not goroutine-safe with respect to a single buffer; the x/sys mapping
// registry itself is synchronized.
type Mmap struct {
	pageSize int
}

// NewMmap creates an Mmap allocator.
func NewMmap() (*Mmap, error) {
	return &Mmap{pageSize: os.Getpagesize()}, nil
}

// Alloc maps at least size bytes of zeroed anonymous memory.
// Alignment up to the page size is satisfied by construction.
func (m *Mmap) Alloc(size, align int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !validAlign(align) || align > m.pageSize {
		return nil, fmt.Errorf("%w: %d (page size %d)", ErrInvalidAlignment, align, m.pageSize)
	}
	if size == 0 {
		return nil, nil
	}

	n := m.roundUp(size)
	data, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", n, err)
	}
	return data, nil
}

// Remap resizes the mapping in place via mremap(2). Without MREMAP_MAYMOVE
// the kernel refuses to relocate, so false means the neighboring address
// space is occupied and the caller should reallocate.
func (m *Mmap) Remap(buf []byte, size int) ([]byte, bool) {
	if size <= 0 || len(buf) == 0 {
		return nil, false
	}
	n := m.roundUp(size)
	if n == len(buf) {
		return buf, true
	}
	data, err := unix.Mremap(buf, n, 0)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Free unmaps buf. buf must be exactly a slice returned by Alloc or Remap.
func (m *Mmap) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munmap(buf)
}

func (m *Mmap) roundUp(size int) int {
	return (size + m.pageSize - 1) &^ (m.pageSize - 1)
}
