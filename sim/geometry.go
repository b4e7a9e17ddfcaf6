// sim/geometry.go
package sim

import "fmt"

// Structural ceilings for the simulated cache. Geometries beyond these are
// rejected before any cache state is allocated.
const (
	MaxSets          = 8192
	MaxAssociativity = 8
	MinLineSize      = 8
	MaxLineSize      = 64

	// AddressBits is the width of simulated addresses. Addresses are
	// printed as 8 hex digits.
	AddressBits = 32
)

// Geometry holds the validated structural parameters of a cache and the bit
// field widths they imply. Immutable once returned by ValidateGeometry.
type Geometry struct {
	NumSets       int  // Number of cache sets
	Associativity int  // Lines per set (set size)
	LineSize      int  // Bytes per cache line
	OffsetBits    uint // Number of address bits selecting a byte within a line
	IndexBits     uint // Number of address bits selecting a set
}

// TotalBytes returns the total data capacity of the cache.
func (g Geometry) TotalBytes() int {
	return g.NumSets * g.Associativity * g.LineSize
}

// TagBits returns the width of the tag field for this geometry.
func (g Geometry) TagBits() uint {
	return AddressBits - g.OffsetBits - g.IndexBits
}

// log2 counts the right-shifts needed to reduce n to 1, so log2(1) == 0.
// Callers must pass a positive power of two.
func log2(n int) uint {
	var bits uint
	for n > 1 {
		n >>= 1
		bits++
	}
	return bits
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateGeometry checks the three raw configuration integers and derives
// the bit field widths. It is the only gate between raw configuration and the
// cache model: once a Geometry is returned, no cache operation can fail.
func ValidateGeometry(numSets, associativity, lineSize int) (Geometry, error) {
	if numSets <= 0 || numSets > MaxSets {
		return Geometry{}, fmt.Errorf("number of sets must be 1-%d, got %d", MaxSets, numSets)
	}
	if associativity <= 0 || associativity > MaxAssociativity {
		return Geometry{}, fmt.Errorf("associativity must be 1-%d, got %d", MaxAssociativity, associativity)
	}
	if lineSize < MinLineSize || lineSize > MaxLineSize {
		return Geometry{}, fmt.Errorf("line size must be %d-%d bytes, got %d", MinLineSize, MaxLineSize, lineSize)
	}
	if !isPowerOfTwo(numSets) {
		return Geometry{}, fmt.Errorf("number of sets must be a power of 2, got %d", numSets)
	}
	if !isPowerOfTwo(lineSize) {
		return Geometry{}, fmt.Errorf("line size must be a power of 2, got %d", lineSize)
	}

	g := Geometry{
		NumSets:       numSets,
		Associativity: associativity,
		LineSize:      lineSize,
		OffsetBits:    log2(lineSize),
		IndexBits:     log2(numSets),
	}
	if g.OffsetBits+g.IndexBits > AddressBits {
		return Geometry{}, fmt.Errorf("offset bits (%d) + index bits (%d) exceed the %d-bit address width",
			g.OffsetBits, g.IndexBits, AddressBits)
	}
	return g, nil
}
