package ergolist

// Append adds v at the end of the list, growing as needed.
func (l *List[T]) Append(v T) error {
	if err := l.EnsureUnusedCapacity(1); err != nil {
		return err
	}
	l.items[l.length] = v
	l.length++
	return nil
}

// AppendAssumeCapacity adds v at the end of the list.
// The caller must have already ensured room for one more element.
func (l *List[T]) AppendAssumeCapacity(v T) {
	l.checkUnused(1)
	l.items[l.length] = v
	l.length++
}

// AppendSlice adds all elements of vs at the end of the list.
func (l *List[T]) AppendSlice(vs []T) error {
	if err := l.EnsureUnusedCapacity(len(vs)); err != nil {
		return err
	}
	copy(l.items[l.length:], vs)
	l.length += len(vs)
	return nil
}

// AppendSliceAssumeCapacity adds all elements of vs at the end of the list.
// The caller must have already ensured room for len(vs) more elements.
func (l *List[T]) AppendSliceAssumeCapacity(vs []T) {
	l.checkUnused(len(vs))
	copy(l.items[l.length:], vs)
	l.length += len(vs)
}

// AppendNTimes adds n copies of v at the end of the list.
func (l *List[T]) AppendNTimes(v T, n int) error {
	if err := l.EnsureUnusedCapacity(n); err != nil {
		return err
	}
	l.AppendNTimesAssumeCapacity(v, n)
	return nil
}

// AppendNTimesAssumeCapacity adds n copies of v at the end of the list.
// The caller must have already ensured room for n more elements.
func (l *List[T]) AppendNTimesAssumeCapacity(v T, n int) {
	l.checkUnused(n)
	tail := l.items[l.length : l.length+n]
	for i := range tail {
		tail[i] = v
	}
	l.length += n
}

// AddOne appends one uninitialized slot and returns a pointer to it, leaving
// initialization to the caller. The pointer is invalidated by any operation
// that reallocates the buffer.
func (l *List[T]) AddOne() (*T, error) {
	if err := l.EnsureUnusedCapacity(1); err != nil {
		return nil, err
	}
	return l.AddOneAssumeCapacity(), nil
}

// AddOneAssumeCapacity appends one uninitialized slot and returns a pointer
// to it. The caller must have already ensured room for one more element.
func (l *List[T]) AddOneAssumeCapacity() *T {
	l.checkUnused(1)
	p := &l.items[l.length]
	l.length++
	return p
}

// AddManyAsSlice appends n uninitialized slots and returns them as a slice,
// leaving initialization to the caller. The slice is invalidated by any
// operation that reallocates the buffer.
func (l *List[T]) AddManyAsSlice(n int) ([]T, error) {
	if err := l.EnsureUnusedCapacity(n); err != nil {
		return nil, err
	}
	return l.AddManyAsSliceAssumeCapacity(n), nil
}

// AddManyAsSliceAssumeCapacity appends n uninitialized slots and returns
// them as a slice. The caller must have already ensured room for n more
// elements.
func (l *List[T]) AddManyAsSliceAssumeCapacity(n int) []T {
	l.checkUnused(n)
	s := l.items[l.length : l.length+n : l.length+n]
	l.length += n
	return s
}

// AppendString appends the bytes of s. Only available for byte lists.
func AppendString(l *List[byte], s string) error {
	if err := l.EnsureUnusedCapacity(len(s)); err != nil {
		return err
	}
	copy(l.items[l.length:], s)
	l.length += len(s)
	return nil
}
