// sim/event.go
package sim

// AccessKind distinguishes read accesses from write accesses. The byte value
// is the character from the trace line (R/r/W/w) and is echoed as given in
// report rows.
type AccessKind byte

// IsRead reports whether the access is a read.
func (k AccessKind) IsRead() bool {
	return k == 'R' || k == 'r'
}

// IsWrite reports whether the access is a write.
func (k AccessKind) IsWrite() bool {
	return k == 'W' || k == 'w'
}

// AccessEvent is one memory access from the trace. The trace source
// guarantees Size is one of {1,2,4,8} and Address is Size-aligned before the
// event reaches the cache model.
type AccessEvent struct {
	Kind    AccessKind
	Size    int
	Address uint32
}

// Outcome is the classification of a single processed access.
type Outcome struct {
	Kind    AccessKind
	Address uint32
	Tag     uint32
	Index   uint32
	Offset  uint32
	Hit     bool
	// MemRefs is the number of backing memory references this access
	// generated: 0 for a read hit, 1 for a read miss, and always 1 for a
	// write because write-through forwards every write to memory.
	MemRefs int
}
