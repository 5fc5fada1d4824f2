package ergolist

import (
	"math"

	"github.com/klauspost/cpuid/v2"
)

// GrowthModel decides how capacity scales when a list must grow. Models are
// consulted only when growing; shrinking always targets the requested size.
// The zero value is GrowBy100Percent, the default.
type GrowthModel uint8

const (
	// GrowBy100Percent doubles capacity until it covers the requirement.
	// This is the default model.
	GrowBy100Percent GrowthModel = iota
	// GrowBy100PercentPadded is GrowBy100Percent plus cache-line padding.
	GrowBy100PercentPadded
	// GrowBy50Percent scales capacity by 1.5x until it covers the requirement.
	GrowBy50Percent
	// GrowBy50PercentPadded is GrowBy50Percent plus cache-line padding.
	GrowBy50PercentPadded
	// GrowBy25Percent scales capacity by 1.25x until it covers the requirement.
	GrowBy25Percent
	// GrowBy25PercentPadded is GrowBy25Percent plus cache-line padding.
	GrowBy25PercentPadded
	// GrowExact allocates exactly the requested minimum.
	GrowExact
	// GrowExactPadded allocates the requested minimum plus one cache line's
	// worth of elements, so counters or flags placed after the buffer by
	// external concurrent structures do not share a line with element data.
	GrowExactPadded
)

func (m GrowthModel) String() string {
	switch m {
	case GrowExact:
		return "exact"
	case GrowExactPadded:
		return "exact+padded"
	case GrowBy100Percent:
		return "100%"
	case GrowBy100PercentPadded:
		return "100%+padded"
	case GrowBy50Percent:
		return "50%"
	case GrowBy50PercentPadded:
		return "50%+padded"
	case GrowBy25Percent:
		return "25%"
	case GrowBy25PercentPadded:
		return "25%+padded"
	}
	return "unknown"
}

func (m GrowthModel) padded() bool {
	switch m {
	case GrowExactPadded, GrowBy100PercentPadded, GrowBy50PercentPadded, GrowBy25PercentPadded:
		return true
	}
	return false
}

// step is the increment one growth round adds to capacity c.
func (m GrowthModel) step(c int) int {
	switch m {
	case GrowBy100Percent, GrowBy100PercentPadded:
		return c
	case GrowBy50Percent, GrowBy50PercentPadded:
		return c / 2
	case GrowBy25Percent, GrowBy25PercentPadded:
		return c / 4
	}
	return 0
}

// target computes the capacity to allocate for a grow from current to at
// least minimum. Percentage models scale repeatedly, saturating at the max
// int rather than wrapping; an empty list bootstraps at the first
// requirement.
func (m GrowthModel) target(current, minimum, padElems int) int {
	t := minimum
	switch m {
	case GrowExact, GrowExactPadded:
	default:
		t = current
		if t <= 0 {
			t = minimum
		}
		for t < minimum {
			inc := m.step(t)
			if inc < 1 {
				inc = 1
			}
			if t > math.MaxInt-inc {
				t = math.MaxInt
				break
			}
			t += inc
		}
	}
	if m.padded() {
		if t > math.MaxInt-padElems {
			return math.MaxInt
		}
		t += padElems
	}
	return t
}

// CacheLinePadding returns the number of elements of elemSize bytes the
// padded growth models add: one cache line's worth, minimum one element.
func CacheLinePadding(elemSize int) int {
	line := cpuid.CPU.CacheLine
	if line <= 0 {
		line = 64
	}
	if elemSize <= 0 {
		return 1
	}
	n := line / elemSize
	if n < 1 {
		n = 1
	}
	return n
}
