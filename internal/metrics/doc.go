// Package metrics provides lock-free counters for adminkit observability.
//
// Counters are stored in fixed uint64 slots and incremented atomically via
// [sync/atomic]. The write path is allocation-free.
//
// # Architecture boundaries
//
// This package owns metric storage and snapshot creation. The root package
// re-exports the types; the gateway and session increment them.
//
// # What this package must NOT do
//
//   - Perform I/O or network calls.
//   - Import adminkit or any sibling package.
//   - Expose global metric registries.
package metrics
