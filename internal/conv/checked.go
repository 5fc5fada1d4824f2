package conv

import (
	"fmt"
	"math"
)

// AddInt adds two non-negative ints safely.
func AddInt(a, b int) (int, error) {
	if b > math.MaxInt-a {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds max int", a, b)
	}
	return a + b, nil
}

// MulInt multiplies two non-negative ints safely.
func MulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}
