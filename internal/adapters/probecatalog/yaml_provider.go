package probecatalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed probes.yaml
var embeddedProbeTable []byte

// reservedShorthands are claimed by the root command's own flags.
var reservedShorthands = map[string]bool{"A": true, "P": true, "v": true, "?": true}

type probeTable struct {
	Probes []probe.Definition `yaml:"probes"`
	All    []probe.ActionID   `yaml:"all"`
}

// YAMLProvider implements the ProbeCatalog interface over the embedded probe table.
type YAMLProvider struct {
	defs []probe.Definition
	byID map[probe.ActionID]int
	all  []probe.ActionID
}

// NewYAMLProvider parses and validates the embedded probe table.
// overrides replaces the command line of the named probes; keys must be probe ids.
func NewYAMLProvider(overrides map[string]string) (ports.ProbeCatalog, error) {
	table, err := decodeProbeTable(embeddedProbeTable)
	if err != nil {
		return nil, err
	}

	p := &YAMLProvider{
		defs: table.Probes,
		byID: make(map[probe.ActionID]int, len(table.Probes)),
		all:  table.All,
	}
	if err := p.index(); err != nil {
		return nil, fmt.Errorf("invalid probe table: %w", err)
	}
	if err := p.applyOverrides(overrides); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeProbeTable(data []byte) (probeTable, error) {
	var table probeTable
	if len(data) == 0 {
		return table, errors.New("embedded probe table is empty")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return table, errors.New("embedded probe table is empty")
		}
		return table, fmt.Errorf("failed to unmarshal embedded probe table: %w", err)
	}
	return table, nil
}

func (p *YAMLProvider) index() error {
	shorthands := make(map[string]probe.ActionID)
	for i, d := range p.defs {
		if !probe.IsProbe(d.ID) {
			return fmt.Errorf("unknown probe %q", d.ID)
		}
		if _, dup := p.byID[d.ID]; dup {
			return fmt.Errorf("probe %q defined twice", d.ID)
		}
		if strings.TrimSpace(d.Command) == "" {
			return fmt.Errorf("probe %q has no command", d.ID)
		}
		if d.RequiresParam() && strings.Count(d.Command, "%s") != 1 {
			return fmt.Errorf("probe %q takes %s but its command has no single %%s placeholder", d.ID, d.Param)
		}
		if d.Shorthand != "" {
			if len(d.Shorthand) != 1 {
				return fmt.Errorf("probe %q shorthand %q must be one character", d.ID, d.Shorthand)
			}
			if reservedShorthands[d.Shorthand] {
				return fmt.Errorf("probe %q shorthand -%s is reserved", d.ID, d.Shorthand)
			}
			if other, dup := shorthands[d.Shorthand]; dup {
				return fmt.Errorf("probes %q and %q share shorthand -%s", other, d.ID, d.Shorthand)
			}
			shorthands[d.Shorthand] = d.ID
		}
		p.byID[d.ID] = i
	}

	for _, id := range p.all {
		i, ok := p.byID[id]
		if !ok {
			return fmt.Errorf("all sequence references unknown probe %q", id)
		}
		if p.defs[i].RequiresParam() {
			return fmt.Errorf("all sequence cannot include %q, it requires --%s", id, p.defs[i].Param)
		}
	}
	return nil
}

func (p *YAMLProvider) applyOverrides(overrides map[string]string) error {
	for name, command := range overrides {
		i, ok := p.byID[probe.ActionID(strings.ToLower(name))]
		if !ok {
			return fmt.Errorf("command override for unknown probe %q", name)
		}
		if strings.TrimSpace(command) == "" {
			return fmt.Errorf("command override for %q is empty", name)
		}
		if p.defs[i].RequiresParam() && strings.Count(command, "%s") != 1 {
			return fmt.Errorf("command override for %q must contain exactly one %%s for --%s", name, p.defs[i].Param)
		}
		p.defs[i].Command = command
	}
	return nil
}

// Definitions returns a copy of the probe table in declaration order.
func (p *YAMLProvider) Definitions() []probe.Definition {
	out := make([]probe.Definition, len(p.defs))
	copy(out, p.defs)
	return out
}

// Definition looks up a single probe.
func (p *YAMLProvider) Definition(id probe.ActionID) (probe.Definition, bool) {
	i, ok := p.byID[id]
	if !ok {
		return probe.Definition{}, false
	}
	return p.defs[i], true
}

// AllSequence returns a copy of the --all order.
func (p *YAMLProvider) AllSequence() []probe.ActionID {
	out := make([]probe.ActionID, len(p.all))
	copy(out, p.all)
	return out
}
