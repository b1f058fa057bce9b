package ports

import "github.com/AntonioJCosta/apache/internal/core/domain/probe"

// ProbeCatalog is the static table mapping each probe to its command line.
type ProbeCatalog interface {
	// Definitions returns every probe in table order.
	Definitions() []probe.Definition
	Definition(id probe.ActionID) (probe.Definition, bool)
	// AllSequence is the fixed, ordered membership of the "all" action.
	AllSequence() []probe.ActionID
}
