package ergolist

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabe-lee/ergolist/alloc"
)

func TestToOwnedSlice(t *testing.T) {
	t.Run("transfers the live elements", func(t *testing.T) {
		l := newWith(t, 1, 2, 3)

		out, err := l.ToOwnedSlice()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, out)
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, 0, l.Cap())
	})

	t.Run("empty list yields nil", func(t *testing.T) {
		l := newWith(t)
		out, err := l.ToOwnedSlice()
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("heap transfer avoids the copy", func(t *testing.T) {
		l := newWith(t, 1, 2, 3)
		before := unsafe.SliceData(l.Items())

		out, err := l.ToOwnedSlice()
		require.NoError(t, err)
		assert.Same(t, before, unsafe.SliceData(out), "remap-down hands out the buffer in place")
	})

	t.Run("arena transfer copies when remap is refused", func(t *testing.T) {
		a := alloc.NewArena(0)
		l, err := New[int](WithAllocator(a))
		require.NoError(t, err)
		require.NoError(t, l.AppendSlice([]int{1, 2, 3}))
		// A second allocation makes the list's buffer a non-tail arena
		// allocation, so the remap-down must be refused.
		_, err = a.Alloc(64, 8)
		require.NoError(t, err)

		out, err := l.ToOwnedSlice()
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, out)
	})

	t.Run("reusable after transfer", func(t *testing.T) {
		l := newWith(t, 1)
		_, err := l.ToOwnedSlice()
		require.NoError(t, err)
		require.NoError(t, l.Append(2))
		assert.Equal(t, []int{2}, l.Items())
	})
}

func TestToOwnedSliceSentinel(t *testing.T) {
	l, err := New[byte]()
	require.NoError(t, err)
	require.NoError(t, AppendString(l, "abc"))

	out, err := l.ToOwnedSliceSentinel(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
	require.Greater(t, cap(out), len(out), "sentinel slot sits past the last element")
	assert.Equal(t, byte(0), out[:cap(out)][len(out)])
	assert.Equal(t, 0, l.Len())

	t.Run("refused remap copies into an exact buffer", func(t *testing.T) {
		a := alloc.NewArena(0)
		l, err := New[int](WithAllocator(a))
		require.NoError(t, err)
		require.NoError(t, l.EnsureTotalCapacity(8))
		require.NoError(t, l.AppendSlice([]int{1, 2, 3}))
		// A second allocation makes the list's buffer a non-tail arena
		// allocation, so the remap-down must be refused.
		_, err = a.Alloc(64, 8)
		require.NoError(t, err)
		before := unsafe.SliceData(l.Items())

		out, err := l.ToOwnedSliceSentinel(-1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, out)
		assert.Equal(t, 4, cap(out), "fallback sizes the buffer to exactly length plus the sentinel")
		assert.NotSame(t, before, unsafe.SliceData(out))
		assert.Equal(t, -1, out[:4][3])
	})

	t.Run("empty list still carries the sentinel", func(t *testing.T) {
		l, err := New[byte]()
		require.NoError(t, err)
		out, err := l.ToOwnedSliceSentinel('$')
		require.NoError(t, err)
		assert.Empty(t, out)
		require.GreaterOrEqual(t, cap(out), 1)
		assert.Equal(t, byte('$'), out[:1][0])
	})
}

func TestFromOwnedSlice(t *testing.T) {
	buf := make([]int, 3, 8)
	copy(buf, []int{1, 2, 3})

	l, err := FromOwnedSlice(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 8, l.Cap())
	assert.Equal(t, []int{1, 2, 3}, l.Items())

	require.NoError(t, l.Append(4))
	assert.Equal(t, []int{1, 2, 3, 4}, l.Items())

	t.Run("adopts without copying", func(t *testing.T) {
		buf := []int{9}
		l, err := FromOwnedSlice(buf)
		require.NoError(t, err)
		l.Set(0, 5)
		assert.Equal(t, 5, buf[0], "the list owns the caller's memory, not a copy")
	})
}

func TestFromOwnedSliceSentinel(t *testing.T) {
	l, err := New[byte]()
	require.NoError(t, err)
	require.NoError(t, AppendString(l, "xyz"))
	out, err := l.ToOwnedSliceSentinel(0)
	require.NoError(t, err)

	back, err := FromOwnedSliceSentinel(out)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Len())
	assert.Equal(t, 4, back.Cap())
	assert.Equal(t, "xyz", string(back.Items()))

	t.Run("missing sentinel slot panics", func(t *testing.T) {
		buf := make([]byte, 2)
		assert.Panics(t, func() { _, _ = FromOwnedSliceSentinel(buf) })
	})
}

func TestOwnedRoundTrip(t *testing.T) {
	l := newWith(t, 1, 2, 3, 4, 5)

	out, err := l.ToOwnedSlice()
	require.NoError(t, err)

	back, err := FromOwnedSlice(out)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, back.Items())

	require.NoError(t, back.Append(6))
	assert.Equal(t, 6, back.Len())
}
