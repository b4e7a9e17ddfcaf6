package trace

// SimulationTrace collects access records during a trace replay.
type SimulationTrace struct {
	Accesses []AccessRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Accesses: make([]AccessRecord, 0),
	}
}

// RecordAccess appends an access record.
func (st *SimulationTrace) RecordAccess(record AccessRecord) {
	st.Accesses = append(st.Accesses, record)
}
