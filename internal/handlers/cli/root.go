package cli

import (
	"fmt"

	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"github.com/AntonioJCosta/apache/internal/handlers/ui"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	queue      []probe.ActionID
	port       string
	list       bool
	summary    bool
	verbose    bool
	configFile string
}

// NewRootCommand creates the apache command. Flags are derived from catalog;
// newRuntime is called once per run after the flags are parsed.
func NewRootCommand(version string, catalog ports.ProbeCatalog, newRuntime RuntimeFactory) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "apache",
		Short: "apache checks the status of Hadoop ecosystem components.",
		Long: `apache checks the status of Hadoop ecosystem components.

Each target option runs one diagnostic command against a cluster service and
prints what it reports. Options run in the order given; --flink runs last.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(cmd, fmt.Errorf("too many command-line arguments (first is %q)", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, opts, newRuntime)
		},
	}
	cmd.SetFlagErrorFunc(usageError)

	flags := cmd.Flags()
	flags.SortFlags = false
	registerActionFlags(flags, catalog, &opts.queue)
	flags.StringVarP(&opts.port, "port", "P", "", "Flink service port, used by --flink.")
	flags.BoolVar(&opts.list, "list", false, "List every probe and the command it runs.")
	flags.BoolVar(&opts.summary, "summary", false, "Print a per-probe status table to stderr after the run.")
	flags.StringVar(&opts.configFile, "config", "", "Config file (default is ./apache.yaml, then $HOME/.apache/apache.yaml, then /etc/apache/apache.yaml).")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log probe execution details to stderr.")
	// -h belongs to --hdfs.
	flags.BoolP("help", "?", false, "Show this help and exit.")

	return cmd
}

// Execute runs root, reports a returned error on its error stream and
// returns the process exit code.
func Execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), ui.ErrorColor(err.Error()))
		return 1
	}
	return 0
}

func usageError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w\n%s", err, ui.DetailColor(fmt.Sprintf("Try %s --help for more information.", cmd.Root().Name())))
}

func runRootCmd(cmd *cobra.Command, opts *rootOptions, newRuntime RuntimeFactory) error {
	if len(opts.queue) == 0 && !opts.list {
		return cmd.Help()
	}

	rt, err := newRuntime(RunOptions{
		ConfigFile: opts.configFile,
		Verbose:    opts.verbose,
		Stderr:     cmd.ErrOrStderr(),
		Presenter:  newConsolePresenter(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	})
	if err != nil {
		return fmt.Errorf("could not initialize: %w", err)
	}

	if opts.list {
		renderProbeTable(cmd.OutOrStdout(), rt.Catalog)
	}
	if len(opts.queue) == 0 {
		return nil
	}

	results := rt.Dispatcher.Dispatch(opts.actions(rt.Catalog))
	if opts.summary {
		renderSummaryTable(cmd.ErrOrStderr(), results)
	}
	return nil
}

// actions resolves the queued flags, attaching --port to probes that take it.
func (o *rootOptions) actions(catalog ports.ProbeCatalog) []probe.Action {
	actions := make([]probe.Action, 0, len(o.queue))
	for _, id := range o.queue {
		action := probe.Action{ID: id}
		if def, ok := catalog.Definition(id); ok && def.Param == "port" {
			action.Param = o.port
		}
		actions = append(actions, action)
	}
	return actions
}
