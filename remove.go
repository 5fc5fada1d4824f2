package ergolist

// Delete removes and returns the element at index i, shifting the elements
// in (i, Len()) one slot to the left. Relative order is preserved. The
// vacated tail slot is wiped when secure wipe is enabled. i must be in
// [0, Len()).
func (l *List[T]) Delete(i int) T {
	l.checkIndex(i)
	v := l.items[i]
	copy(l.items[i:l.length-1], l.items[i+1:l.length])
	l.truncate(l.length - 1)
	return v
}

// DeleteRange removes the n elements in [start, start+n), shifting the
// trailing elements left to close the gap. Relative order is preserved. The
// vacated tail slots are wiped when secure wipe is enabled.
func (l *List[T]) DeleteRange(start, n int) {
	l.checkRange(start, n)
	copy(l.items[start:l.length-n], l.items[start+n:l.length])
	l.truncate(l.length - n)
}

// SwapDelete removes and returns the element at index i by moving the last
// live element into its slot. O(1), does not preserve order; the resulting
// order of remaining elements is unspecified. i must be in [0, Len()).
func (l *List[T]) SwapDelete(i int) T {
	l.checkIndex(i)
	v := l.items[i]
	l.items[i] = l.items[l.length-1]
	l.truncate(l.length - 1)
	return v
}

// Pop removes and returns the last live element. The list must not be empty.
func (l *List[T]) Pop() T {
	if l.length == 0 {
		panic("ergolist: pop from empty list")
	}
	v := l.items[l.length-1]
	l.truncate(l.length - 1)
	return v
}

// TryPop removes and returns the last live element, or reports false when
// the list is empty.
func (l *List[T]) TryPop() (T, bool) {
	if l.length == 0 {
		var zero T
		return zero, false
	}
	return l.Pop(), true
}
