package ergolist

import "sync/atomic"

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordGrow is called after each capacity growth. remapped reports
	// whether the allocator resized the buffer in place.
	RecordGrow(oldCap, newCap int, remapped bool)

	// RecordShrink is called after each allocation shrink. kept reports
	// whether the larger allocation was retained because the allocator
	// failed to produce a smaller one.
	RecordShrink(oldCap, newCap int, kept bool)

	// RecordWipe is called after a vacated region is zeroed.
	RecordWipe(bytes int)

	// RecordRelease is called when a list releases its buffer.
	RecordRelease(capacity int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, bool)   {}
func (NoopMetricsCollector) RecordShrink(int, int, bool) {}
func (NoopMetricsCollector) RecordWipe(int)              {}
func (NoopMetricsCollector) RecordRelease(int)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount    atomic.Int64
	RemapHits    atomic.Int64
	ShrinkCount  atomic.Int64
	ShrinkKept   atomic.Int64
	WipedBytes   atomic.Int64
	ReleaseCount atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int, remapped bool) {
	b.GrowCount.Add(1)
	if remapped {
		b.RemapHits.Add(1)
	}
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(oldCap, newCap int, kept bool) {
	b.ShrinkCount.Add(1)
	if kept {
		b.ShrinkKept.Add(1)
	}
}

// RecordWipe implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWipe(bytes int) {
	b.WipedBytes.Add(int64(bytes))
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(int) {
	b.ReleaseCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:    b.GrowCount.Load(),
		RemapHits:    b.RemapHits.Load(),
		ShrinkCount:  b.ShrinkCount.Load(),
		ShrinkKept:   b.ShrinkKept.Load(),
		WipedBytes:   b.WipedBytes.Load(),
		ReleaseCount: b.ReleaseCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount    int64
	RemapHits    int64
	ShrinkCount  int64
	ShrinkKept   int64
	WipedBytes   int64
	ReleaseCount int64
}
