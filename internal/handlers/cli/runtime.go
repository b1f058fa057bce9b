package cli

import (
	"io"

	"github.com/AntonioJCosta/apache/internal/core/ports"
)

// RunOptions carries what the root command resolved from its flags into the
// runtime factory.
type RunOptions struct {
	ConfigFile string
	Verbose    bool
	Stderr     io.Writer
	Presenter  ports.ProbePresenter
}

// Runtime is the set of services one invocation runs against.
type Runtime struct {
	Catalog    ports.ProbeCatalog
	Dispatcher ports.DispatchService
}

// RuntimeFactory builds the Runtime once flags have been parsed, so that
// configuration named on the command line can shape it.
type RuntimeFactory func(opts RunOptions) (Runtime, error)
