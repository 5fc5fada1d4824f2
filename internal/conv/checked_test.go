package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := AddInt(0, 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := AddInt(40, 2)
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("valid at max", func(t *testing.T) {
		got, err := AddInt(math.MaxInt-1, 1)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := AddInt(math.MaxInt, 1)
		assert.Error(t, err)
	})
}

func TestMulInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := MulInt(math.MaxInt, 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := MulInt(6, 7)
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("valid at max", func(t *testing.T) {
		got, err := MulInt(math.MaxInt, 1)
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid overflow", func(t *testing.T) {
		_, err := MulInt(math.MaxInt/2+1, 2)
		assert.Error(t, err)
	})
}
