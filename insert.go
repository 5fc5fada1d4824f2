package ergolist

// Insert places v at index i, shifting the elements in [i, Len()) one slot
// to the right. i must be in [0, Len()].
func (l *List[T]) Insert(i int, v T) error {
	l.checkInsert(i)
	if err := l.EnsureUnusedCapacity(1); err != nil {
		return err
	}
	l.openHole(i, 1)
	l.items[i] = v
	return nil
}

// InsertAssumeCapacity places v at index i. The caller must have already
// ensured room for one more element. i must be in [0, Len()].
func (l *List[T]) InsertAssumeCapacity(i int, v T) {
	l.checkInsert(i)
	l.checkUnused(1)
	l.openHole(i, 1)
	l.items[i] = v
}

// InsertSlice places all elements of vs at index i, shifting the elements in
// [i, Len()) right by len(vs). i must be in [0, Len()].
func (l *List[T]) InsertSlice(i int, vs []T) error {
	l.checkInsert(i)
	if err := l.EnsureUnusedCapacity(len(vs)); err != nil {
		return err
	}
	l.openHole(i, len(vs))
	copy(l.items[i:], vs)
	return nil
}

// InsertSliceAssumeCapacity places all elements of vs at index i. The caller
// must have already ensured room for len(vs) more elements.
func (l *List[T]) InsertSliceAssumeCapacity(i int, vs []T) {
	l.checkInsert(i)
	l.checkUnused(len(vs))
	l.openHole(i, len(vs))
	copy(l.items[i:], vs)
}

// InsertSlotsAt opens a hole of n uninitialized slots at index i and returns
// it as a slice, leaving initialization to the caller. The slice is
// invalidated by any operation that reallocates the buffer.
func (l *List[T]) InsertSlotsAt(i, n int) ([]T, error) {
	l.checkInsert(i)
	if err := l.EnsureUnusedCapacity(n); err != nil {
		return nil, err
	}
	l.openHole(i, n)
	return l.items[i : i+n : i+n], nil
}

// openHole shifts [i, length) right by n, exposing n slots at i. Capacity
// must already be ensured. copy has memmove semantics, so the overlapping
// shift is safe.
func (l *List[T]) openHole(i, n int) {
	copy(l.items[i+n:l.length+n], l.items[i:l.length])
	l.length += n
}
