package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"github.com/AntonioJCosta/apache/internal/handlers/ui"
)

// consolePresenter prints probe output verbatim to out and diagnostics to errOut.
type consolePresenter struct {
	out    io.Writer
	errOut io.Writer
}

func newConsolePresenter(out, errOut io.Writer) ports.ProbePresenter {
	return &consolePresenter{out: out, errOut: errOut}
}

// Output writes the captured output unmodified, followed by one newline.
func (p *consolePresenter) Output(_ probe.ActionID, output string) {
	fmt.Fprintf(p.out, "%s\n", output)
}

func (p *consolePresenter) Failure(_ probe.ActionID, commandLine string, _ error) {
	fmt.Fprintln(p.errOut, ui.ErrorColor(fmt.Sprintf("Error executing command: %s", commandLine)))
}

func (p *consolePresenter) ParamMissing(def probe.Definition) {
	msg := fmt.Sprintf("%s is not specified correctly. Please specify it using the --%s option.", capitalize(def.Param), def.Param)
	fmt.Fprintln(p.out, ui.WarningColor(msg))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
