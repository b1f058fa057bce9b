package testutil

import (
	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
)

// MockProbeCatalog is an in-memory ports.ProbeCatalog built from a fixed slice.
type MockProbeCatalog struct {
	Defs []probe.Definition
	All  []probe.ActionID
}

// Definitions returns Defs.
func (m *MockProbeCatalog) Definitions() []probe.Definition {
	return m.Defs
}

// Definition looks id up in Defs.
func (m *MockProbeCatalog) Definition(id probe.ActionID) (probe.Definition, bool) {
	for _, d := range m.Defs {
		if d.ID == id {
			return d, true
		}
	}
	return probe.Definition{}, false
}

// AllSequence returns All.
func (m *MockProbeCatalog) AllSequence() []probe.ActionID {
	return m.All
}

var _ ports.ProbeCatalog = (*MockProbeCatalog)(nil)
