package ergolist

import (
	"log/slog"

	"github.com/gabe-lee/ergolist/alloc"
)

// FailureMode selects, once at construction, how allocation failure is
// surfaced by every operation that can allocate.
type FailureMode uint8

const (
	// FailureReturn surfaces allocation failure as an error return; callers
	// must handle it.
	FailureReturn FailureMode = iota
	// FailureAbort logs the allocator failure through the configured Logger
	// and panics. For programs where allocation failure is unrecoverable.
	FailureAbort
	// FailureUnreachable declares the allocator infallible; an allocation
	// failure is a program bug and panics with a diagnostic. For fixed
	// arenas sized by the caller.
	FailureUnreachable
)

func (m FailureMode) String() string {
	switch m {
	case FailureReturn:
		return "return"
	case FailureAbort:
		return "abort"
	case FailureUnreachable:
		return "unreachable"
	}
	return "unknown"
}

type options struct {
	allocator alloc.Allocator
	growth    GrowthModel
	failure   FailureMode
	alignment int
	wipe      bool
	logger    *Logger
	metrics   MetricsCollector
	capacity  int
}

// Option configures list construction.
//
// The resulting configuration is immutable for the list's lifetime.
type Option func(*options)

// WithAllocator sets the allocator backing the list.
// If nil is passed, alloc.Default is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default
		}
		o.allocator = a
	}
}

// WithGrowthModel selects the capacity growth policy.
// Default: GrowBy100Percent.
func WithGrowthModel(m GrowthModel) Option {
	return func(o *options) {
		o.growth = m
	}
}

// WithFailureMode selects how allocation failure is surfaced.
// Default: FailureReturn.
func WithFailureMode(m FailureMode) Option {
	return func(o *options) {
		o.failure = m
	}
}

// WithAlignment sets the byte alignment of the element buffer. Must be a
// power of two and at least the element type's natural alignment.
// Default: the element type's natural alignment.
func WithAlignment(n int) Option {
	return func(o *options) {
		o.alignment = n
	}
}

// WithSecureWipe configures active zeroing of removed data: every region
// vacated by shrink, truncation, deletion or range replacement is
// overwritten with zero bytes before the memory is freed or left as unused
// capacity. Intended for sensitive payloads such as key material.
func WithSecureWipe(enabled bool) Option {
	return func(o *options) {
		o.wipe = enabled
	}
}

// WithCapacity pre-sizes the list to the given capacity at construction.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger configures structured logging for capacity transitions.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// allocation behavior. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}
