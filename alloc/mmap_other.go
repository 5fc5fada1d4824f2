//go:build !linux

package alloc

// Mmap is only available on Linux, where mremap(2) provides in-place resize.
type Mmap struct{}

// NewMmap reports that mapped allocation is unavailable on this platform.
func NewMmap() (*Mmap, error) {
	return nil, ErrUnsupported
}

func (m *Mmap) Alloc(size, align int) ([]byte, error) { return nil, ErrUnsupported }

func (m *Mmap) Remap(buf []byte, size int) ([]byte, bool) { return nil, false }

func (m *Mmap) Free(buf []byte) {}
