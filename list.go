package ergolist

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/gabe-lee/ergolist/alloc"
	"github.com/gabe-lee/ergolist/internal/conv"
	"github.com/gabe-lee/ergolist/internal/wipe"
)

// List is a growable contiguous buffer of T backed by a pluggable allocator.
//
// Elements in [0, Len()) are live; slots in [Len(), Cap()) are allocated but
// hold unspecified data unless written through a slot operation. The list
// exclusively owns its buffer until an ownership-transfer operation hands it
// to the caller.
//
// Lists must be created with New, Of[T]().Build(), or one of the FromOwned
// constructors. A List is not safe for concurrent use.
type List[T any] struct {
	items  []T    // full allocated region; len(items) == capacity
	length int
	raw    []byte // allocator-owned backing memory, exactly as returned by Alloc/Remap

	cfg       options
	elemSize  int
	elemAlign int
	padElems  int
	stats     Stats
}

// Stats counts capacity transitions over a list's lifetime.
type Stats struct {
	Grows       uint64
	Shrinks     uint64
	RemapHits   uint64
	RemapMisses uint64
	BytesWiped  uint64
}

// New creates a list for element type T with the given options.
func New[T any](opts ...Option) (*List[T], error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return newList[T](o)
}

func newList[T any](o options) (*List[T], error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	elemAlign := int(unsafe.Alignof(zero))

	if o.alignment == 0 {
		o.alignment = elemAlign
	}
	if elemSize > 0 {
		if o.alignment&(o.alignment-1) != 0 || o.alignment < elemAlign {
			return nil, fmt.Errorf("%w: %d (element requires %d)", ErrInvalidAlignment, o.alignment, elemAlign)
		}
	}
	if o.allocator == nil {
		o.allocator = alloc.Default
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}

	l := &List[T]{
		cfg:       o,
		elemSize:  elemSize,
		elemAlign: elemAlign,
		padElems:  CacheLinePadding(elemSize),
	}
	if o.capacity > 0 {
		if err := l.EnsureTotalCapacityPrecise(o.capacity); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of live elements.
func (l *List[T]) Len() int { return l.length }

// Cap returns the number of allocated element slots. For zero-sized element
// types capacity is unbounded.
func (l *List[T]) Cap() int {
	if l.elemSize == 0 {
		return math.MaxInt
	}
	return len(l.items)
}

// Stats returns a snapshot of the list's capacity-transition counters.
func (l *List[T]) Stats() Stats { return l.stats }

func (l *List[T]) String() string {
	return fmt.Sprintf("List{len: %d, cap: %d, grows: %d, shrinks: %d, remap hits: %d}",
		l.length, len(l.items), l.stats.Grows, l.stats.Shrinks, l.stats.RemapHits)
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

// Items returns a read/write view over exactly the live region.
// The view is invalidated by any operation that reallocates the buffer.
func (l *List[T]) Items() []T {
	return l.items[:l.length:l.length]
}

// AllocatedSlice returns a view over the full allocated region, including the
// uninitialized tail. Useful for manual bulk-fill followed by SetLen.
func (l *List[T]) AllocatedSlice() []T {
	return l.items
}

// UnusedCapacitySlice returns the allocated slots past the live region.
func (l *List[T]) UnusedCapacitySlice() []T {
	return l.items[l.length:]
}

// Range returns a bounds-checked window over [start, start+n) of the live
// region. Callers needing a fixed-size array can convert the result with a
// constant-size conversion at the call site.
func (l *List[T]) Range(start, n int) []T {
	l.checkRange(start, n)
	return l.items[start : start+n : start+n]
}

// Get returns the element at index i. i must be in [0, Len()).
func (l *List[T]) Get(i int) T {
	l.checkIndex(i)
	return l.items[i]
}

// Set overwrites the element at index i. i must be in [0, Len()).
func (l *List[T]) Set(i int, v T) {
	l.checkIndex(i)
	l.items[i] = v
}

// First returns the first live element. The list must not be empty.
func (l *List[T]) First() T {
	l.checkIndex(0)
	return l.items[0]
}

// Last returns the last live element. The list must not be empty.
func (l *List[T]) Last() T {
	l.checkIndex(l.length - 1)
	return l.items[l.length-1]
}

// SetLen adjusts the live length to n, which must be within capacity.
// Growing the length exposes slots the caller must have written through
// AllocatedSlice or UnusedCapacitySlice; shrinking it truncates, wiping the
// dropped tail when secure wipe is enabled.
func (l *List[T]) SetLen(n int) {
	if n < 0 || (l.elemSize > 0 && n > len(l.items)) {
		panic(fmt.Sprintf("ergolist: SetLen(%d) outside capacity %d", n, l.Cap()))
	}
	if n < l.length {
		l.truncate(n)
		return
	}
	if l.elemSize == 0 {
		l.ensureZST(n)
	}
	l.length = n
}

// Clone returns a copy of the list holding the same elements, built with the
// same configuration and allocator, sized to exactly the live length.
func (l *List[T]) Clone() (*List[T], error) {
	c := &List[T]{
		cfg:       l.cfg,
		elemSize:  l.elemSize,
		elemAlign: l.elemAlign,
		padElems:  l.padElems,
	}
	if err := c.EnsureTotalCapacityPrecise(l.length); err != nil {
		return nil, err
	}
	if l.elemSize == 0 {
		c.ensureZST(l.length)
	}
	copy(c.items, l.items[:l.length])
	c.length = l.length
	return c, nil
}

// ---------------------------------------------------------------------------
// Capacity & growth engine
// ---------------------------------------------------------------------------

// EnsureTotalCapacity grows capacity to at least minimum elements using the
// configured growth model. A no-op when capacity already suffices.
func (l *List[T]) EnsureTotalCapacity(minimum int) error {
	if minimum < 0 {
		panic(fmt.Sprintf("ergolist: negative capacity %d", minimum))
	}
	if l.elemSize == 0 {
		l.ensureZST(minimum)
		return nil
	}
	if minimum <= len(l.items) {
		return nil
	}
	target := l.cfg.growth.target(len(l.items), minimum, l.padElems)
	return l.grow(target, minimum)
}

// EnsureTotalCapacityPrecise grows capacity to exactly n elements, bypassing
// the growth model. If n is below the current length, the length is
// truncated first (wiping the dropped tail when secure wipe is enabled); the
// allocation itself is never shrunk here - use ShrinkAndFree for that.
func (l *List[T]) EnsureTotalCapacityPrecise(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("ergolist: negative capacity %d", n))
	}
	if l.elemSize == 0 {
		l.ensureZST(n)
		return nil
	}
	if n < l.length {
		l.truncate(n)
	}
	if n <= len(l.items) {
		return nil
	}
	return l.grow(n, n)
}

// EnsureUnusedCapacity guarantees room for additional more elements beyond
// the current length. The sum is checked for overflow.
func (l *List[T]) EnsureUnusedCapacity(additional int) error {
	if additional < 0 {
		panic(fmt.Sprintf("ergolist: negative capacity %d", additional))
	}
	need, err := conv.AddInt(l.length, additional)
	if err != nil {
		return l.fail(fmt.Errorf("%w: length %d + %d", ErrCapacityOverflow, l.length, additional))
	}
	return l.EnsureTotalCapacity(need)
}

// grow reallocates to target elements (falling back to minimum if target
// overflows the byte size), preferring an in-place remap of the existing
// allocation over allocate-copy-free.
func (l *List[T]) grow(target, minimum int) error {
	byteSize, err := conv.MulInt(target, l.elemSize)
	if err != nil {
		byteSize, err = conv.MulInt(minimum, l.elemSize)
		if err != nil {
			return l.fail(fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, minimum, l.elemSize))
		}
	}

	oldCap := len(l.items)
	if l.raw != nil {
		if nraw, ok := l.cfg.allocator.Remap(l.raw, byteSize); ok {
			l.adopt(nraw)
			l.stats.Grows++
			l.stats.RemapHits++
			l.noteGrow(oldCap, true)
			return nil
		}
		l.stats.RemapMisses++
	}

	nraw, aerr := l.cfg.allocator.Alloc(byteSize, l.cfg.alignment)
	if aerr != nil {
		return l.fail(&AllocError{Size: byteSize, Align: l.cfg.alignment, cause: aerr})
	}
	nitems := sliceOf[T](nraw, l.elemSize)
	copy(nitems, l.items[:min(l.length, len(nitems))])
	l.releaseRaw()
	l.adopt(nraw)
	l.stats.Grows++
	l.noteGrow(oldCap, false)
	return nil
}

// ShrinkAndFree reduces the live length to n and tries to return the excess
// allocation. Shrink never fails: if the allocator can neither remap down
// nor provide a smaller buffer, the list keeps the larger allocation and
// only the length is reduced. n must not exceed the current length.
func (l *List[T]) ShrinkAndFree(n int) {
	if n < 0 || n > l.length {
		panic(fmt.Sprintf("ergolist: shrink to %d outside length %d", n, l.length))
	}
	l.truncate(n)
	if l.elemSize == 0 {
		return
	}
	oldCap := len(l.items)
	if n == len(l.items) {
		return
	}
	if n == 0 {
		l.releaseRaw()
		l.raw = nil
		l.items = nil
		l.stats.Shrinks++
		l.noteShrink(oldCap, 0, false)
		return
	}

	byteSize := n * l.elemSize
	if nraw, ok := l.cfg.allocator.Remap(l.raw, byteSize); ok {
		l.adopt(nraw)
		l.stats.Shrinks++
		l.stats.RemapHits++
		l.noteShrink(oldCap, len(l.items), false)
		return
	}
	l.stats.RemapMisses++

	nraw, err := l.cfg.allocator.Alloc(byteSize, l.cfg.alignment)
	if err != nil {
		// Data loss is avoided: keep the larger allocation, memory is
		// simply not returned.
		l.noteShrink(oldCap, oldCap, true)
		return
	}
	nitems := sliceOf[T](nraw, l.elemSize)
	copy(nitems, l.items[:n])
	l.releaseRaw()
	l.adopt(nraw)
	l.stats.Shrinks++
	l.noteShrink(oldCap, len(l.items), false)
}

// ShrinkRetainingCapacity reduces the live length to n without touching the
// allocation. n must not exceed the current length.
func (l *List[T]) ShrinkRetainingCapacity(n int) {
	if n < 0 || n > l.length {
		panic(fmt.Sprintf("ergolist: shrink to %d outside length %d", n, l.length))
	}
	l.truncate(n)
}

// ClearRetainingCapacity drops all live elements, keeping the allocation.
func (l *List[T]) ClearRetainingCapacity() {
	l.truncate(0)
}

// ClearAndFree drops all live elements and releases the allocation.
func (l *List[T]) ClearAndFree() {
	l.ShrinkAndFree(0)
}

// Release frees the buffer and resets the list to the empty state, wiping
// the live region first when secure wipe is enabled.
func (l *List[T]) Release() {
	oldCap := len(l.items)
	l.wipeRange(0, l.length)
	if l.raw != nil {
		l.cfg.allocator.Free(l.raw)
	}
	l.reset()
	l.cfg.metrics.RecordRelease(oldCap)
	if l.cfg.logger != nil {
		l.cfg.logger.LogRelease(oldCap)
	}
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

// adopt installs a buffer returned by the allocator, deriving capacity from
// its actual size (allocators may round up).
func (l *List[T]) adopt(raw []byte) {
	l.raw = raw
	l.items = sliceOf[T](raw, l.elemSize)
}

// releaseRaw wipes the live region of the current buffer (when configured)
// and hands it back to the allocator. Bookkeeping is left to the caller.
func (l *List[T]) releaseRaw() {
	if l.raw == nil {
		return
	}
	l.wipeRange(0, l.length)
	l.cfg.allocator.Free(l.raw)
}

// truncate drops the live elements in [n, length), wiping them when secure
// wipe is enabled. No-op when n >= length.
func (l *List[T]) truncate(n int) {
	if n >= l.length {
		return
	}
	l.wipeRange(n, l.length)
	l.length = n
}

// wipeRange zeroes the bytes of element slots [from, to) when secure wipe is
// enabled.
func (l *List[T]) wipeRange(from, to int) {
	if !l.cfg.wipe || l.elemSize == 0 || l.raw == nil || from >= to {
		return
	}
	b := l.raw[from*l.elemSize : to*l.elemSize]
	wipe.Zero(b)
	l.stats.BytesWiped += uint64(len(b))
	l.cfg.metrics.RecordWipe(len(b))
}

// ensureZST maintains the element view for zero-sized types, where capacity
// is unbounded and no real allocation occurs.
func (l *List[T]) ensureZST(n int) {
	if n > len(l.items) {
		l.items = make([]T, n)
	}
}

func (l *List[T]) reset() {
	l.raw = nil
	l.items = nil
	l.length = 0
}

// fail applies the configured failure mode to a resource-exhaustion error.
func (l *List[T]) fail(err error) error {
	switch l.cfg.failure {
	case FailureAbort:
		if l.cfg.logger != nil {
			l.cfg.logger.Error("allocation failure", "error", err)
		}
		panic(err)
	case FailureUnreachable:
		panic(fmt.Sprintf("ergolist: allocation declared infallible but failed: %v", err))
	}
	return err
}

func (l *List[T]) noteGrow(oldCap int, remapped bool) {
	l.cfg.metrics.RecordGrow(oldCap, len(l.items), remapped)
	if l.cfg.logger != nil {
		l.cfg.logger.LogGrow(oldCap, len(l.items), remapped)
	}
}

func (l *List[T]) noteShrink(oldCap, newCap int, kept bool) {
	l.cfg.metrics.RecordShrink(oldCap, newCap, kept)
	if l.cfg.logger != nil {
		l.cfg.logger.LogShrink(oldCap, newCap, kept)
	}
}

// checkIndex validates an element index in [0, length).
func (l *List[T]) checkIndex(i int) {
	if i < 0 || i >= l.length {
		panic(fmt.Sprintf("ergolist: index %d out of range [0, %d)", i, l.length))
	}
}

// checkInsert validates an insertion position in [0, length].
func (l *List[T]) checkInsert(i int) {
	if i < 0 || i > l.length {
		panic(fmt.Sprintf("ergolist: insert position %d out of range [0, %d]", i, l.length))
	}
}

// checkRange validates the live sub-range [start, start+n).
func (l *List[T]) checkRange(start, n int) {
	if start < 0 || n < 0 || start > l.length-n {
		panic(fmt.Sprintf("ergolist: range [%d, %d) out of range [0, %d)", start, start+n, l.length))
	}
}

// checkUnused enforces the assume-capacity precondition of n free slots.
// For zero-sized elements the precondition is vacuously true.
func (l *List[T]) checkUnused(n int) {
	if l.elemSize == 0 {
		l.ensureZST(l.length + n)
		return
	}
	if n > len(l.items)-l.length {
		panic(fmt.Sprintf("ergolist: assume-capacity violated: need %d unused slots, have %d", n, len(l.items)-l.length))
	}
}

// sliceOf reinterprets allocator memory as a typed slice.
func sliceOf[T any](raw []byte, elemSize int) []T {
	if len(raw) == 0 || elemSize == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), len(raw)/elemSize)
}
