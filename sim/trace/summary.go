package trace

// TraceSummary aggregates statistics from a SimulationTrace. The counters
// recompute, from the per-access records alone, the totals the cache model
// tracks internally, so the two can be cross-checked.
type TraceSummary struct {
	TotalAccesses int
	Hits          int
	Misses        int
	MemReads      int
	MemWrites     int
	SetsTouched   int
	SetHistogram  map[uint32]int // set index → number of accesses mapped there
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SetHistogram: make(map[uint32]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAccesses = len(st.Accesses)
	for _, a := range st.Accesses {
		summary.SetHistogram[a.Index]++
		if a.Hit {
			summary.Hits++
		} else {
			summary.Misses++
		}
		switch a.Kind {
		case "R", "r":
			summary.MemReads += a.MemRefs
		case "W", "w":
			summary.MemWrites += a.MemRefs
		}
	}

	summary.SetsTouched = len(summary.SetHistogram)

	return summary
}
