// Package trace provides per-access record collection for offline analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// AccessRecord captures the classification of a single memory access.
type AccessRecord struct {
	Kind    string // "R" or "W" as it appeared in the trace
	Address uint32
	Tag     uint32
	Index   uint32
	Offset  uint32
	Hit     bool
	MemRefs int // backing memory references this access generated
}
