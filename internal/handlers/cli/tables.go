package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"github.com/AntonioJCosta/apache/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// renderProbeTable lists the probe table without running anything.
func renderProbeTable(w io.Writer, catalog ports.ProbeCatalog) {
	inAll := make(map[probe.ActionID]bool)
	for _, id := range catalog.AllSequence() {
		inAll[id] = true
	}

	fmt.Fprintln(w, ui.HeaderColor("Available probes:"))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Flag", "Description", "Command", "In --all"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, def := range catalog.Definitions() {
		flag := "--" + string(def.ID)
		if def.Shorthand != "" {
			flag = fmt.Sprintf("-%s, %s", def.Shorthand, flag)
		}
		if def.RequiresParam() {
			flag += fmt.Sprintf(" (needs --%s)", def.Param)
		}
		table.Append([]string{flag, def.Description, def.Command, yesNo(inAll[def.ID])})
	}
	table.Render()
}

// renderSummaryTable prints one row per probe attempted during the run.
func renderSummaryTable(w io.Writer, results []probe.Result) {
	fmt.Fprintln(w, ui.HeaderColor("Probe summary:"))
	if len(results) == 0 {
		fmt.Fprintln(w, ui.InfoColor("No probes were run."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Probe", "Status", "Bytes", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	failed := 0
	for _, r := range results {
		if r.Status != probe.StatusOK {
			failed++
		}
		table.Append([]string{string(r.ID), string(r.Status), strconv.Itoa(r.Bytes), valOrDash(r.CommandLine)})
	}
	table.Render()

	if failed == 0 {
		fmt.Fprintln(w, ui.SuccessColor(fmt.Sprintf("%d probe(s) completed.", len(results))))
	} else {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("%d of %d probe(s) did not complete.", failed, len(results))))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func valOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
