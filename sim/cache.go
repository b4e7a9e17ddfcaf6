// sim/cache.go
package sim

// Line is one slot within a set. Recency is a dense LRU rank in
// [0, associativity-1]; among the valid lines of a set, higher means more
// recently used.
type Line struct {
	Valid   bool
	Tag     uint32
	Recency int
}

// Cache is the set-associative cache model. It owns the set/line state and
// the statistics counters, and processes one access at a time. A Cache is
// not safe for concurrent use; the trace replay drives it sequentially.
type Cache struct {
	geometry Geometry
	sets     [][]Line
	stats    Stats
}

// NewCache allocates the cache state for a validated geometry. All lines
// start invalid with recency 0.
func NewCache(g Geometry) *Cache {
	sets := make([][]Line, g.NumSets)
	for i := range sets {
		sets[i] = make([]Line, g.Associativity)
	}
	return &Cache{geometry: g, sets: sets}
}

// Geometry returns the geometry the cache was built from.
func (c *Cache) Geometry() Geometry {
	return c.geometry
}

// Stats returns a copy of the current counters.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Lines returns a copy of the lines of one set, for inspection.
func (c *Cache) Lines(index uint32) []Line {
	set := c.sets[index]
	out := make([]Line, len(set))
	copy(out, set)
	return out
}

// decompose splits an address into its tag, index, and offset fields.
// Pure bit arithmetic, no state.
func (c *Cache) decompose(address uint32) (tag, index, offset uint32) {
	g := c.geometry
	offset = address & uint32(g.LineSize-1)
	index = (address >> g.OffsetBits) & uint32(g.NumSets-1)
	tag = address >> (g.OffsetBits + g.IndexBits)
	return tag, index, offset
}

// lookup scans the set in way order and returns the first valid line holding
// the tag, or -1 on a miss. Replacement never leaves two valid lines with
// the same tag in one set, so the first match is the only match.
func (c *Cache) lookup(set []Line, tag uint32) int {
	for way := range set {
		if set[way].Valid && set[way].Tag == tag {
			return way
		}
	}
	return -1
}

// touchLRU marks a way as most recently used. Every valid line ranked above
// the touched line's prior rank moves down one, then the touched line takes
// the top rank. The ranks of the valid lines in a set always form a dense
// range, so this update is what keeps that invariant.
func (c *Cache) touchLRU(set []Line, way int) {
	prior := set[way].Recency
	for i := range set {
		if set[i].Valid && set[i].Recency > prior {
			set[i].Recency--
		}
	}
	set[way].Recency = c.geometry.Associativity - 1
}

// selectVictim picks the way a read miss replaces: the first invalid way if
// any (cold miss), otherwise the way with the minimum recency rank. Scan
// order is way 0 upward with strict less-than, so the earliest minimum wins.
func (c *Cache) selectVictim(set []Line) int {
	for way := range set {
		if !set[way].Valid {
			return way
		}
	}
	victim := 0
	min := set[0].Recency
	for way := 1; way < len(set); way++ {
		if set[way].Recency < min {
			min = set[way].Recency
			victim = way
		}
	}
	return victim
}

// Process classifies one access and updates the cache state and counters.
//
// Reads follow LRU replacement: a hit touches the line, a miss loads the
// tag into the victim way and touches it. Writes are write-through with no
// write allocation: every write issues one memory write, a hit touches the
// line, and a miss leaves the set untouched.
func (c *Cache) Process(event AccessEvent) Outcome {
	tag, index, offset := c.decompose(event.Address)
	set := c.sets[index]
	way := c.lookup(set, tag)
	hit := way >= 0

	outcome := Outcome{
		Kind:    event.Kind,
		Address: event.Address,
		Tag:     tag,
		Index:   index,
		Offset:  offset,
		Hit:     hit,
	}

	switch {
	case event.Kind.IsRead():
		if hit {
			c.stats.Hits++
			c.touchLRU(set, way)
		} else {
			c.stats.Misses++
			c.stats.MemReads++
			victim := c.selectVictim(set)
			set[victim].Valid = true
			set[victim].Tag = tag
			c.touchLRU(set, victim)
			outcome.MemRefs = 1
		}
	case event.Kind.IsWrite():
		// one memory write regardless of hit or miss
		c.stats.MemWrites++
		outcome.MemRefs = 1
		if hit {
			c.stats.Hits++
			c.touchLRU(set, way)
		} else {
			c.stats.Misses++
		}
	}
	return outcome
}
