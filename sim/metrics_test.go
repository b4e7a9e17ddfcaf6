package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_DerivedValues(t *testing.T) {
	s := Stats{Hits: 3, Misses: 1, MemReads: 1, MemWrites: 2}
	assert.Equal(t, 4, s.TotalAccesses())
	assert.Equal(t, 3, s.TotalMemRefs())
	assert.InDelta(t, 75.0, s.HitRate(), 1e-9)
	assert.InDelta(t, 25.0, s.MissRate(), 1e-9)
}

func TestStats_ZeroAccesses(t *testing.T) {
	s := Stats{}
	assert.Equal(t, 0, s.TotalAccesses())
	assert.Equal(t, 0.0, s.HitRate())
	assert.Equal(t, 0.0, s.MissRate())
}
