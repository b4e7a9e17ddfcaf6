package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalAccesses)
	assert.Equal(t, 0, summary.SetsTouched)
	assert.NotNil(t, summary.SetHistogram)
}

func TestSummarize_EmptyTrace(t *testing.T) {
	summary := Summarize(NewSimulationTrace())
	assert.Equal(t, 0, summary.TotalAccesses)
	assert.Equal(t, 0, summary.Hits)
	assert.Equal(t, 0, summary.Misses)
}

func TestSummarize_CountersAndHistogram(t *testing.T) {
	st := NewSimulationTrace()
	st.RecordAccess(AccessRecord{Kind: "R", Index: 0, Hit: false, MemRefs: 1})
	st.RecordAccess(AccessRecord{Kind: "R", Index: 0, Hit: true, MemRefs: 0})
	st.RecordAccess(AccessRecord{Kind: "W", Index: 0, Hit: true, MemRefs: 1})
	st.RecordAccess(AccessRecord{Kind: "W", Index: 3, Hit: false, MemRefs: 1})
	st.RecordAccess(AccessRecord{Kind: "r", Index: 3, Hit: false, MemRefs: 1})

	summary := Summarize(st)
	assert.Equal(t, 5, summary.TotalAccesses)
	assert.Equal(t, 2, summary.Hits)
	assert.Equal(t, 3, summary.Misses)
	assert.Equal(t, 2, summary.MemReads)
	assert.Equal(t, 2, summary.MemWrites)
	assert.Equal(t, 2, summary.SetsTouched)
	assert.Equal(t, map[uint32]int{0: 3, 3: 2}, summary.SetHistogram)
}
