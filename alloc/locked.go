package alloc

import "sync"

// Locked is a mutex-protected wrapper that makes any Allocator safe to share
// across goroutines. The containers built on top remain single-owner; only
// the allocator itself is serialized.
type Locked struct {
	mu    sync.Mutex
	inner Allocator
}

// NewLocked wraps inner with a mutex.
func NewLocked(inner Allocator) *Locked {
	return &Locked{inner: inner}
}

// Alloc thread-safely allocates from the wrapped allocator.
func (l *Locked) Alloc(size, align int) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Alloc(size, align)
}

// Remap thread-safely attempts an in-place resize.
func (l *Locked) Remap(buf []byte, size int) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Remap(buf, size)
}

// Free thread-safely returns buf to the wrapped allocator.
func (l *Locked) Free(buf []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Free(buf)
}
