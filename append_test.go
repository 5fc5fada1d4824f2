package ergolist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	l, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, l.Append(i))
		require.Equal(t, i+1, l.Len())
		require.GreaterOrEqual(t, l.Cap(), l.Len())
		require.Equal(t, i, l.Get(i))
	}
}

func TestAppendSlice(t *testing.T) {
	l, err := New[int]()
	require.NoError(t, err)

	require.NoError(t, l.AppendSlice([]int{1, 2, 3}))
	require.NoError(t, l.AppendSlice(nil))
	require.NoError(t, l.AppendSlice([]int{4, 5}))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Items())
}

func TestAppendNTimes(t *testing.T) {
	l, err := New[byte]()
	require.NoError(t, err)

	require.NoError(t, l.AppendNTimes('x', 4))
	assert.Equal(t, []byte("xxxx"), l.Items())

	require.NoError(t, l.AppendNTimes('y', 0))
	assert.Equal(t, 4, l.Len())
}

func TestAppendAssumeCapacity(t *testing.T) {
	l, err := New[int]()
	require.NoError(t, err)
	require.NoError(t, l.EnsureUnusedCapacity(3))

	l.AppendAssumeCapacity(1)
	l.AppendSliceAssumeCapacity([]int{2, 3})
	assert.Equal(t, []int{1, 2, 3}, l.Items())

	t.Run("violation panics", func(t *testing.T) {
		l, err := New[int](WithGrowthModel(GrowExact))
		require.NoError(t, err)
		require.NoError(t, l.Append(1))
		assert.Panics(t, func() { l.AppendAssumeCapacity(2) })
		assert.Equal(t, 1, l.Len())
	})
}

func TestAddOne(t *testing.T) {
	l, err := New[int]()
	require.NoError(t, err)

	p, err := l.AddOne()
	require.NoError(t, err)
	*p = 42
	assert.Equal(t, []int{42}, l.Items())
	assert.Equal(t, 1, l.Len())
}

func TestAddManyAsSlice(t *testing.T) {
	l, err := New[int]()
	require.NoError(t, err)
	require.NoError(t, l.Append(1))

	s, err := l.AddManyAsSlice(3)
	require.NoError(t, err)
	require.Len(t, s, 3)
	for i := range s {
		s[i] = 10 + i
	}
	assert.Equal(t, []int{1, 10, 11, 12}, l.Items())

	t.Run("slots start zeroed on fresh memory", func(t *testing.T) {
		l, err := New[int]()
		require.NoError(t, err)
		s, err := l.AddManyAsSlice(4)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 0}, s)
	})
}

func TestAppendString(t *testing.T) {
	l, err := New[byte]()
	require.NoError(t, err)

	require.NoError(t, AppendString(l, "hello "))
	require.NoError(t, AppendString(l, "world"))
	assert.Equal(t, "hello world", string(l.Items()))
}

func TestBatchedReserveThenFill(t *testing.T) {
	l, err := New[uint64](WithGrowthModel(GrowExact))
	require.NoError(t, err)

	require.NoError(t, l.EnsureUnusedCapacity(64))
	capBefore := l.Cap()
	for i := 0; i < 64; i++ {
		l.AppendAssumeCapacity(uint64(i))
	}
	assert.Equal(t, 64, l.Len())
	assert.Equal(t, capBefore, l.Cap(), "no reallocation inside the reserved batch")
	assert.Equal(t, uint64(1), l.Stats().Grows)
}
