package dispatch

import "github.com/AntonioJCosta/apache/internal/core/domain/probe"

// orderActions keeps the requested order but moves parameterized probes
// behind everything else, so their parameter can appear anywhere on the
// command line.
func (s *service) orderActions(actions []probe.Action) []probe.Action {
	ordered := make([]probe.Action, 0, len(actions))
	var deferred []probe.Action
	for _, a := range actions {
		if def, ok := s.catalog.Definition(a.ID); ok && def.RequiresParam() {
			deferred = append(deferred, a)
			continue
		}
		ordered = append(ordered, a)
	}
	return append(ordered, deferred...)
}
