package testutil

import (
	"errors"

	"github.com/AntonioJCosta/apache/internal/core/ports"
)

// MockProcessExecutor is a mock implementation of ports.ProcessExecutor.
// Every command line it receives is recorded in Calls.
type MockProcessExecutor struct {
	ExecuteFunc func(commandLine string) (string, error)
	Calls       []string
}

// Execute records the call and delegates to ExecuteFunc.
func (m *MockProcessExecutor) Execute(commandLine string) (string, error) {
	m.Calls = append(m.Calls, commandLine)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(commandLine)
	}
	return "", errors.New("MockProcessExecutor.ExecuteFunc not implemented")
}

var _ ports.ProcessExecutor = (*MockProcessExecutor)(nil)
