// Package ergolist provides an allocator-backed growable list.
//
// This file implements the fluent builder API for creating configured lists.
// Builders are immutable - each method returns a new builder with the updated
// configuration.
package ergolist

import "github.com/gabe-lee/ergolist/alloc"

// Of creates a new list builder for element type T.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents accidental
// state sharing.
//
// Example:
//
//	keys, err := ergolist.Of[byte]().
//	    Growth(ergolist.GrowBy50Percent).
//	    SecureWipe(true).
//	    Allocator(arena).
//	    Build()
func Of[T any]() Builder[T] {
	return Builder[T]{
		growth:  GrowBy100Percent,
		failure: FailureReturn,
	}
}

// Builder is an immutable fluent builder for creating lists.
// Each method returns a new builder with the updated configuration.
type Builder[T any] struct {
	allocator alloc.Allocator
	growth    GrowthModel
	failure   FailureMode
	alignment int
	wipe      bool
	logger    *Logger
	metrics   MetricsCollector
	capacity  int
}

// Growth selects the capacity growth policy.
// Default: GrowBy100Percent.
func (b Builder[T]) Growth(m GrowthModel) Builder[T] {
	b.growth = m
	return b
}

// Failure selects how allocation failure is surfaced.
// Default: FailureReturn.
func (b Builder[T]) Failure(m FailureMode) Builder[T] {
	b.failure = m
	return b
}

// Alignment sets the byte alignment of the element buffer.
// Default: the element type's natural alignment.
func (b Builder[T]) Alignment(n int) Builder[T] {
	b.alignment = n
	return b
}

// SecureWipe enables or disables active zeroing of removed data.
// Default: false.
func (b Builder[T]) SecureWipe(enabled bool) Builder[T] {
	b.wipe = enabled
	return b
}

// Allocator sets the allocator backing the list.
// Default: alloc.Default.
func (b Builder[T]) Allocator(a alloc.Allocator) Builder[T] {
	b.allocator = a
	return b
}

// Capacity pre-sizes the list at construction.
func (b Builder[T]) Capacity(n int) Builder[T] {
	b.capacity = n
	return b
}

// Logger sets the structured logger for capacity transitions.
func (b Builder[T]) Logger(l *Logger) Builder[T] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder[T]) Metrics(mc MetricsCollector) Builder[T] {
	b.metrics = mc
	return b
}

// Build creates the configured list.
func (b Builder[T]) Build() (*List[T], error) {
	return newList[T](options{
		allocator: b.allocator,
		growth:    b.growth,
		failure:   b.failure,
		alignment: b.alignment,
		wipe:      b.wipe,
		logger:    b.logger,
		metrics:   b.metrics,
		capacity:  b.capacity,
	})
}
