// sim/report.go
package sim

import (
	"fmt"
	"io"
)

// Reporter renders the simulator's text output: the configuration banner,
// one fixed-column row per access, and the end-of-stream summary block.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// PrintConfig displays the validated cache configuration.
func (r *Reporter) PrintConfig(g Geometry) {
	fmt.Fprintf(r.w, "Cache Simulator Configuration\n")
	fmt.Fprintf(r.w, "==============================\n")
	fmt.Fprintf(r.w, "Number of sets:    %d\n", g.NumSets)
	fmt.Fprintf(r.w, "Set associativity: %d\n", g.Associativity)
	fmt.Fprintf(r.w, "Line size:         %d bytes\n", g.LineSize)
	fmt.Fprintf(r.w, "Total cache size:  %d bytes\n", g.TotalBytes())
	fmt.Fprintf(r.w, "\n")
}

// PrintHeader displays the access table column header.
func (r *Reporter) PrintHeader() {
	fmt.Fprintf(r.w, "Type Address  Tag      Index Offset Result MemRefs\n")
	fmt.Fprintf(r.w, "---- -------- -------- ----- ------ ------ -------\n")
}

// PrintOutcome displays one access row. The result column prints "hit "
// with a trailing space so the columns line up against "miss".
func (r *Reporter) PrintOutcome(o Outcome) {
	result := "miss"
	if o.Hit {
		result = "hit "
	}
	fmt.Fprintf(r.w, "%c %08x %x %x %x %s %d\n",
		byte(o.Kind), o.Address, o.Tag, o.Index, o.Offset, result, o.MemRefs)
}

// PrintSummary displays the aggregated statistics at the end of the trace.
// Rates print as 0.00%% when no accesses occurred.
func (r *Reporter) PrintSummary(stats Stats) {
	fmt.Fprintf(r.w, "\n")
	fmt.Fprintf(r.w, "Simulation Summary Statistics\n")
	fmt.Fprintf(r.w, "==============================\n")
	fmt.Fprintf(r.w, "Total accesses:    %d\n", stats.TotalAccesses())
	fmt.Fprintf(r.w, "Hits:              %d\n", stats.Hits)
	fmt.Fprintf(r.w, "Misses:            %d\n", stats.Misses)
	fmt.Fprintf(r.w, "Hit rate:          %.2f%%\n", stats.HitRate())
	fmt.Fprintf(r.w, "Miss rate:         %.2f%%\n", stats.MissRate())
	fmt.Fprintf(r.w, "Memory reads:      %d\n", stats.MemReads)
	fmt.Fprintf(r.w, "Memory writes:     %d\n", stats.MemWrites)
	fmt.Fprintf(r.w, "Total memory refs: %d\n", stats.TotalMemRefs())
}
