package ports

import "github.com/AntonioJCosta/apache/internal/core/domain/probe"

// DispatchService turns resolved actions into probe executions.
type DispatchService interface {
	// Dispatch runs the probes for actions one at a time and returns one
	// result per probe attempted.
	Dispatch(actions []probe.Action) []probe.Result
}
