package ports

import "github.com/AntonioJCosta/apache/internal/core/domain/probe"

/*
ProbePresenter shows probe outcomes to the user. This is a driving-side port
implemented by the console handler.
*/
type ProbePresenter interface {
	// Output displays the captured output of a successful probe.
	Output(id probe.ActionID, output string)
	// Failure reports that commandLine could not be executed.
	Failure(id probe.ActionID, commandLine string, err error)
	// ParamMissing reports that def was skipped because its parameter was
	// absent or malformed.
	ParamMissing(def probe.Definition)
}
