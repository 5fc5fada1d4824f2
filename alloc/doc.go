// Package alloc provides the memory capability consumed by ergolist.
//
// # Overview
//
// An Allocator hands out aligned byte ranges and takes them back. The one
// optional capability beyond allocate/free is Remap: a best-effort resize of
// an existing range that keeps its address. Containers prefer Remap before
// falling back to allocate-copy-free, because a successful remap preserves
// the identity of everything already stored in the buffer.
//
// # Implementations
//
//   - Heap: backed by the Go runtime. Free is a no-op (the GC reclaims),
//     and Remap succeeds only within the slack of the original allocation.
//   - Arena: a chunked bump allocator. Only the most recent allocation can
//     be remapped or freed; everything else is reclaimed by Reset.
//   - Mmap: anonymous memory mappings (Linux). Remap uses mremap(2) without
//     MREMAP_MAYMOVE, so a successful remap is a true in-place resize.
//   - Locked: a mutex wrapper that makes any Allocator shareable across
//     goroutines.
//
// # Thread Safety
//
// Heap is safe for concurrent use. Arena and Mmap are not; wrap them in
// Locked when multiple goroutines share one allocator.
package alloc
