package ergolist

import "io"

// Writer is an io.Writer that appends to a byte list, growing it as needed.
// Construct with NewWriter; only byte lists have a byte-stream adapter.
type Writer struct {
	list *List[byte]
}

// NewWriter returns an appending writer over l.
func NewWriter(l *List[byte]) *Writer {
	return &Writer{list: l}
}

// Write appends p to the list.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.list.AppendSlice(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteByte appends a single byte to the list.
func (w *Writer) WriteByte(c byte) error {
	return w.list.Append(c)
}

// WriteString appends s to the list.
func (w *Writer) WriteString(s string) (int, error) {
	if err := AppendString(w.list, s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// FixedWriter is an io.Writer that appends to a byte list but never grows
// it: a write that would exceed the current capacity fails with
// ErrWriterFull and appends nothing. For contexts where growth is
// explicitly disallowed.
type FixedWriter struct {
	list *List[byte]
}

// NewFixedWriter returns a non-growing writer over l.
func NewFixedWriter(l *List[byte]) *FixedWriter {
	return &FixedWriter{list: l}
}

// Write appends p to the list if it fits within the current capacity.
func (w *FixedWriter) Write(p []byte) (int, error) {
	if len(p) > w.list.Cap()-w.list.Len() {
		return 0, ErrWriterFull
	}
	w.list.AppendSliceAssumeCapacity(p)
	return len(p), nil
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.Writer       = (*FixedWriter)(nil)
)
