// Package sim provides the core model for the set-associative data cache
// simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - geometry.go: cache structural parameters and their validation
//   - cache.go: address decomposition, set lookup, LRU bookkeeping, replacement
//   - event.go: access events fed into the model and the per-access Outcome
//
// # Architecture
//
// The sim package owns the cache model and its statistics; peripherals live
// beside it or in sub-packages:
//   - config.go: configuration file loading (classic and YAML formats)
//   - replay.go: trace-line parsing and replay against a cache
//   - report.go: fixed-column per-access rows and the summary block
//   - sim/trace/: pure per-access record types plus Summarize
//   - sim/recording/: optional SQLite persistence of access records
//
// The model is write-through with no write allocation and uses dense
// rank-based LRU replacement: each valid line in a set holds a recency rank
// in [0, associativity-1], higher meaning more recently used.
package sim
