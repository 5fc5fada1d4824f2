package ergolist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unusedRegion returns the bytes of the unused-capacity region for
// inspection after a removal.
func unusedRegion(l *List[byte]) []byte {
	return l.UnusedCapacitySlice()
}

func newSecret(t *testing.T, s string) *List[byte] {
	t.Helper()
	l, err := New[byte](WithSecureWipe(true))
	require.NoError(t, err)
	require.NoError(t, AppendString(l, s))
	return l
}

func assertZeroed(t *testing.T, b []byte) {
	t.Helper()
	for i, c := range b {
		require.Zerof(t, c, "byte %d not wiped", i)
	}
}

func TestWipeOnDelete(t *testing.T) {
	l := newSecret(t, "secret")

	l.Delete(0)
	assertZeroed(t, unusedRegion(l))
	assert.Equal(t, "ecret", string(l.Items()))
}

func TestWipeOnDeleteRange(t *testing.T) {
	l := newSecret(t, "topsecret")

	l.DeleteRange(0, 3)
	assertZeroed(t, unusedRegion(l))
	assert.Equal(t, "secret", string(l.Items()))
}

func TestWipeOnPop(t *testing.T) {
	l := newSecret(t, "pw")

	l.Pop()
	assertZeroed(t, unusedRegion(l))
}

func TestWipeOnShrink(t *testing.T) {
	l := newSecret(t, "abcdefgh")

	l.ShrinkRetainingCapacity(2)
	assertZeroed(t, unusedRegion(l))

	l.ClearRetainingCapacity()
	assertZeroed(t, unusedRegion(l))
}

func TestWipeOnReplaceShrink(t *testing.T) {
	l := newSecret(t, "aaaabbbb")

	require.NoError(t, l.ReplaceRange(0, 6, []byte("cc")))
	assert.Equal(t, "ccbb", string(l.Items()))
	assertZeroed(t, unusedRegion(l))
}

func TestWipeAccounting(t *testing.T) {
	l := newSecret(t, "12345678")

	l.DeleteRange(0, 4)
	assert.Equal(t, uint64(4), l.Stats().BytesWiped)

	l.Release()
	assert.Equal(t, uint64(8), l.Stats().BytesWiped, "release wipes the remaining live bytes")
}

func TestNoWipeByDefault(t *testing.T) {
	l, err := New[byte]()
	require.NoError(t, err)
	require.NoError(t, AppendString(l, "data"))

	l.Pop()
	assert.Zero(t, l.Stats().BytesWiped)
}
