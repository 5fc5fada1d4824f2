// Package ergolist implements a growable contiguous list built directly on a
// pluggable memory allocator.
//
// # Overview
//
// List[T] keeps a single exclusively-owned buffer plus an explicit length.
// It is a building block for systems code that needs precise control over
// growth strategy, allocation-failure policy, element alignment, and secure
// erasure of removed data - places where append and the runtime growth
// heuristics give too little control.
//
// # Basic Usage
//
//	l, err := ergolist.New[uint32]()
//	if err != nil { ... }
//	defer l.Release()
//
//	_ = l.AppendSlice([]uint32{1, 2, 3})
//	_ = l.Insert(1, 99)    // [1, 99, 2, 3]
//	_ = l.Delete(0)        // [99, 2, 3]
//
// Configuration is fixed at construction, through options or the fluent
// builder:
//
//	l, err := ergolist.Of[byte]().
//	    Growth(ergolist.GrowBy50Percent).
//	    SecureWipe(true).
//	    Allocator(alloc.NewArena(0)).
//	    Build()
//
// # Growth
//
// All mutation paths route through the capacity engine before writing past
// current capacity. The engine first asks the allocator to remap the buffer
// in place; only when that fails does it allocate-copy-free. Growth models
// range from exact sizing to percentage scaling, each with a padded variant
// that leaves one cache line of slack for external concurrent structures.
//
// # Batched Capacity
//
// Every allocating operation has an assume-capacity twin that skips the
// reservation step. Hot paths reserve once and then use the twins:
//
//	_ = l.EnsureUnusedCapacity(len(batch))
//	for _, v := range batch {
//	    l.AppendAssumeCapacity(v)
//	}
//
// Violating the precondition is a caller bug and panics, as do
// out-of-range indexes and pop on an empty list. Resource exhaustion, by
// contrast, follows the configured FailureMode.
//
// # Secure Wipe
//
// With WithSecureWipe(true), every region vacated by delete, shrink,
// truncation or range replacement is overwritten with zero bytes before the
// memory is freed or left as unused capacity, as is the live region on
// Release. For sensitive payloads such as key material.
//
// # Thread Safety
//
// A List has no internal synchronization and is designed for single-owner
// use. Allocators can be shared across goroutines by wrapping them in
// alloc.Locked; the padded growth models exist so structures built on top
// can avoid false sharing, and confer no synchronization by themselves.
package ergolist
