package ergolist

// ReplaceRange replaces the n elements in [start, start+n) with vs.
//
// When len(vs) == n the range is overwritten in place. When vs is larger,
// the overlapping prefix is overwritten and the remainder inserted after it,
// growing the list. When vs is smaller, the overlapping prefix is
// overwritten, the trailing elements shift left to close the gap, and the
// vacated tail is wiped when secure wipe is enabled.
func (l *List[T]) ReplaceRange(start, n int, vs []T) error {
	l.checkRange(start, n)
	switch {
	case len(vs) == n:
		copy(l.items[start:start+n], vs)
	case len(vs) > n:
		copy(l.items[start:start+n], vs[:n])
		return l.InsertSlice(start+n, vs[n:])
	default:
		copy(l.items[start:start+len(vs)], vs)
		shrink := n - len(vs)
		copy(l.items[start+len(vs):l.length-shrink], l.items[start+n:l.length])
		l.truncate(l.length - shrink)
	}
	return nil
}
