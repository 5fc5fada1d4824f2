//go:build linux

package alloc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapAlloc(t *testing.T) {
	m, err := NewMmap()
	require.NoError(t, err)

	t.Run("rounds up to page size", func(t *testing.T) {
		b, err := m.Alloc(100, 8)
		require.NoError(t, err)
		defer m.Free(b)

		page := os.Getpagesize()
		assert.Equal(t, page, len(b))
		assert.Zero(t, addrOf(b)%uintptr(page))
	})

	t.Run("memory is zeroed", func(t *testing.T) {
		b, err := m.Alloc(4096, 8)
		require.NoError(t, err)
		defer m.Free(b)

		for _, v := range b {
			require.Zero(t, v)
		}
	})

	t.Run("alignment above page size rejected", func(t *testing.T) {
		_, err := m.Alloc(100, os.Getpagesize()*2)
		assert.ErrorIs(t, err, ErrInvalidAlignment)
	})

	t.Run("zero size", func(t *testing.T) {
		b, err := m.Alloc(0, 8)
		require.NoError(t, err)
		assert.Nil(t, b)
	})
}

func TestMmapRemap(t *testing.T) {
	m, err := NewMmap()
	require.NoError(t, err)

	t.Run("same rounded size is a no-op", func(t *testing.T) {
		b, err := m.Alloc(100, 8)
		require.NoError(t, err)
		defer m.Free(b)

		got, ok := m.Remap(b, 200)
		require.True(t, ok)
		assert.Equal(t, addrOf(b), addrOf(got))
	})

	t.Run("shrink in place", func(t *testing.T) {
		b, err := m.Alloc(os.Getpagesize()*4, 8)
		require.NoError(t, err)
		b[0] = 0x7f

		got, ok := m.Remap(b, os.Getpagesize())
		if !ok {
			m.Free(b)
			t.Skip("mremap shrink not available")
		}
		defer m.Free(got)

		assert.Equal(t, os.Getpagesize(), len(got))
		assert.Equal(t, addrOf(b), addrOf(got))
		assert.Equal(t, byte(0x7f), got[0])
	})
}

func TestMmapFree(t *testing.T) {
	m, err := NewMmap()
	require.NoError(t, err)

	b, err := m.Alloc(4096, 8)
	require.NoError(t, err)
	assert.NotPanics(t, func() { m.Free(b) })
	assert.NotPanics(t, func() { m.Free(nil) })
}
