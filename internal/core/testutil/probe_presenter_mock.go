package testutil

import (
	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
)

// PresenterEvent is one call observed by MockProbePresenter.
type PresenterEvent struct {
	Kind        string // "output", "failure" or "param-missing"
	ID          probe.ActionID
	Output      string
	CommandLine string
	Err         error
}

// MockProbePresenter records every presentation call in order.
type MockProbePresenter struct {
	Events []PresenterEvent
}

func (m *MockProbePresenter) Output(id probe.ActionID, output string) {
	m.Events = append(m.Events, PresenterEvent{Kind: "output", ID: id, Output: output})
}

func (m *MockProbePresenter) Failure(id probe.ActionID, commandLine string, err error) {
	m.Events = append(m.Events, PresenterEvent{Kind: "failure", ID: id, CommandLine: commandLine, Err: err})
}

func (m *MockProbePresenter) ParamMissing(def probe.Definition) {
	m.Events = append(m.Events, PresenterEvent{Kind: "param-missing", ID: def.ID})
}

var _ ports.ProbePresenter = (*MockProbePresenter)(nil)
