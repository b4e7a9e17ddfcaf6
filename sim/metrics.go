// sim/metrics.go
package sim

// Stats aggregates the four access counters the simulation reports.
// All counters are monotonically increasing; they are mutated only by
// Cache.Process and never reset.
type Stats struct {
	Hits      int // Accesses that found their tag resident
	Misses    int // Accesses that did not
	MemReads  int // Lines fetched from memory (read misses)
	MemWrites int // Writes forwarded to memory (every write)
}

// TotalAccesses returns the number of accesses processed.
func (s Stats) TotalAccesses() int {
	return s.Hits + s.Misses
}

// TotalMemRefs returns the number of backing memory references issued.
func (s Stats) TotalMemRefs() int {
	return s.MemReads + s.MemWrites
}

// HitRate returns the hit percentage, or 0 when no accesses occurred.
func (s Stats) HitRate() float64 {
	total := s.TotalAccesses()
	if total == 0 {
		return 0.0
	}
	return 100.0 * float64(s.Hits) / float64(total)
}

// MissRate returns the miss percentage, or 0 when no accesses occurred.
func (s Stats) MissRate() float64 {
	total := s.TotalAccesses()
	if total == 0 {
		return 0.0
	}
	return 100.0 * float64(s.Misses) / float64(total)
}
