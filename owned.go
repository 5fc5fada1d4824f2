package ergolist

import (
	"fmt"
	"unsafe"

	"github.com/gabe-lee/ergolist/internal/conv"
)

// ToOwnedSlice transfers the buffer to the caller as a plain slice of
// exactly the live elements, and resets the list to the empty state. The
// transfer first tries an in-place remap down to the live length, in which
// case no copy occurs; otherwise a fresh buffer of exactly the live length
// is allocated, the elements copied, and the old buffer released (wiped
// first when secure wipe is enabled).
//
// Buffers obtained this way can be handed back via FromOwnedSlice.
func (l *List[T]) ToOwnedSlice() ([]T, error) {
	if l.elemSize == 0 {
		out := make([]T, l.length)
		l.reset()
		return out, nil
	}
	if l.length == 0 {
		l.Release()
		return nil, nil
	}

	n := l.length
	byteSize := n * l.elemSize
	handOut := len(l.items) == n
	if !handOut {
		if nraw, ok := l.cfg.allocator.Remap(l.raw, byteSize); ok {
			l.adopt(nraw)
			l.stats.RemapHits++
			handOut = true
		} else {
			l.stats.RemapMisses++
		}
	}
	if handOut {
		out := l.items[:n:len(l.items)]
		l.reset()
		return out, nil
	}

	nraw, err := l.cfg.allocator.Alloc(byteSize, l.cfg.alignment)
	if err != nil {
		return nil, l.fail(&AllocError{Size: byteSize, Align: l.cfg.alignment, cause: err})
	}
	nitems := sliceOf[T](nraw, l.elemSize)
	copy(nitems, l.items[:n])
	l.releaseRaw()
	l.reset()
	return nitems[:n:len(nitems)], nil
}

// ToOwnedSliceSentinel is ToOwnedSlice with one extra slot reserved past the
// live elements, holding sentinel. The returned slice's length excludes the
// sentinel, but the slot at [len] is guaranteed present and initialized -
// for interoperability with terminator-delimited consumers.
func (l *List[T]) ToOwnedSliceSentinel(sentinel T) ([]T, error) {
	if l.elemSize == 0 {
		out := make([]T, l.length, l.length+1)
		l.reset()
		return out, nil
	}
	need, err := conv.AddInt(l.length, 1)
	if err != nil {
		return nil, l.fail(fmt.Errorf("%w: length %d + 1", ErrCapacityOverflow, l.length))
	}
	if err := l.EnsureTotalCapacityPrecise(need); err != nil {
		return nil, err
	}

	n := l.length
	byteSize := need * l.elemSize
	handOut := len(l.items) == need
	if !handOut {
		if nraw, ok := l.cfg.allocator.Remap(l.raw, byteSize); ok {
			l.adopt(nraw)
			l.stats.RemapHits++
			handOut = true
		} else {
			l.stats.RemapMisses++
		}
	}
	if handOut {
		l.items[n] = sentinel
		out := l.items[:n : n+1]
		l.reset()
		return out, nil
	}

	nraw, aerr := l.cfg.allocator.Alloc(byteSize, l.cfg.alignment)
	if aerr != nil {
		return nil, l.fail(&AllocError{Size: byteSize, Align: l.cfg.alignment, cause: aerr})
	}
	nitems := sliceOf[T](nraw, l.elemSize)
	copy(nitems, l.items[:n])
	nitems[n] = sentinel
	l.releaseRaw()
	l.reset()
	return nitems[:n : n+1], nil
}

// FromOwnedSlice adopts buf as the list's buffer without copying. Length and
// capacity are derived from buf (capacity is cap(buf)); the caller must not
// use buf afterward - ownership transfers fully to the list.
//
// The allocator configured through opts must be able to accept buf back via
// Free; alloc.Heap (the default) always can.
func FromOwnedSlice[T any](buf []T, opts ...Option) (*List[T], error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	o.capacity = 0
	l, err := newList[T](o)
	if err != nil {
		return nil, err
	}
	l.adoptOwned(buf, cap(buf))
	return l, nil
}

// FromOwnedSliceSentinel adopts buf whose allocation carries a sentinel slot
// immediately past its last element, as produced by ToOwnedSliceSentinel.
// Capacity is len(buf)+1; cap(buf) must exceed len(buf) (the sentinel slot),
// anything else is a caller error.
func FromOwnedSliceSentinel[T any](buf []T, opts ...Option) (*List[T], error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	o.capacity = 0
	l, err := newList[T](o)
	if err != nil {
		return nil, err
	}
	if l.elemSize > 0 && cap(buf) <= len(buf) {
		panic(fmt.Sprintf("ergolist: sentinel slot missing: len %d, cap %d", len(buf), cap(buf)))
	}
	l.adoptOwned(buf, len(buf)+1)
	return l, nil
}

// adoptOwned installs a caller-supplied buffer of slots capacity slots,
// reconstructing the raw byte view the allocator bookkeeping needs.
func (l *List[T]) adoptOwned(buf []T, slots int) {
	l.length = len(buf)
	if l.elemSize == 0 {
		l.ensureZST(l.length)
		return
	}
	if slots == 0 {
		return
	}
	base := unsafe.SliceData(buf)
	l.raw = unsafe.Slice((*byte)(unsafe.Pointer(base)), slots*l.elemSize)
	l.items = unsafe.Slice(base, slots)
}
