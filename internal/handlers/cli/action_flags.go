package cli

import (
	"strconv"

	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"github.com/spf13/pflag"
)

// actionFlag is a boolean-style flag that appends its action to a shared
// queue each time it is set, so probes run in command-line order.
type actionFlag struct {
	id    probe.ActionID
	queue *[]probe.ActionID
}

func (f *actionFlag) String() string { return "false" }

func (f *actionFlag) Type() string { return "bool" }

func (f *actionFlag) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	if on {
		*f.queue = append(*f.queue, f.id)
	}
	return nil
}

func addActionFlag(fs *pflag.FlagSet, id probe.ActionID, shorthand, usage string, queue *[]probe.ActionID) {
	flag := fs.VarPF(&actionFlag{id: id, queue: queue}, string(id), shorthand, usage)
	flag.NoOptDefVal = "true"
}

// registerActionFlags adds --all followed by one flag per catalog probe, in table order.
func registerActionFlags(fs *pflag.FlagSet, catalog ports.ProbeCatalog, queue *[]probe.ActionID) {
	addActionFlag(fs, probe.All, "A", "Check the status of all Hadoop ecosystem components.", queue)
	for _, def := range catalog.Definitions() {
		addActionFlag(fs, def.ID, def.Shorthand, def.Description, queue)
	}
}
