package probe

import (
	"errors"
	"fmt"
	"strconv"
)

// ActionID identifies one diagnostic probe, or the fixed "all" sequence.
type ActionID string

const (
	All       ActionID = "all"
	HDFS      ActionID = "hdfs"
	YARN      ActionID = "yarn"
	HBase     ActionID = "hbase"
	Spark     ActionID = "spark"
	Kafka     ActionID = "kafka"
	ZooKeeper ActionID = "zookeeper"
	Flink     ActionID = "flink"
	Storm     ActionID = "storm"
	Metastore ActionID = "metastore"
	Hue       ActionID = "hue"
	Pig       ActionID = "pig"
	Oozie     ActionID = "oozie"
	Presto    ActionID = "presto"
	Tez       ActionID = "tez"
	Atlas     ActionID = "atlas"
	Ranger    ActionID = "ranger"
)

var knownProbes = map[ActionID]bool{
	HDFS: true, YARN: true, HBase: true, Spark: true, Kafka: true,
	ZooKeeper: true, Flink: true, Storm: true, Metastore: true, Hue: true,
	Pig: true, Oozie: true, Presto: true, Tez: true, Atlas: true, Ranger: true,
}

// IsProbe reports whether id names a single probe (All is not a probe).
func IsProbe(id ActionID) bool {
	return knownProbes[id]
}

// ErrParamNotSpecified is returned when a parameterized probe is missing its
// parameter or the supplied value is malformed.
var ErrParamNotSpecified = errors.New("parameter not specified")

// Action is one resolved request. Param is only meaningful for probes whose
// Definition names a parameter.
type Action struct {
	ID    ActionID
	Param string
}

// Definition is one row of the static flag-to-command table.
type Definition struct {
	ID          ActionID `yaml:"id"`
	Shorthand   string   `yaml:"shorthand"`
	Description string   `yaml:"description"`
	// Command is a literal command line, or a template with a single %s
	// placeholder when Param is set.
	Command string `yaml:"command"`
	Param   string `yaml:"param,omitempty"`
}

// RequiresParam reports whether the command line needs a runtime parameter.
func (d Definition) RequiresParam() bool {
	return d.Param != ""
}

// CommandLine builds the command line for this probe.
func (d Definition) CommandLine(param string) (string, error) {
	if !d.RequiresParam() {
		return d.Command, nil
	}
	if err := validateParam(d.Param, param); err != nil {
		return "", fmt.Errorf("%s for %s: %w", d.Param, d.ID, err)
	}
	return fmt.Sprintf(d.Command, param), nil
}

func validateParam(name, value string) error {
	if value == "" {
		return ErrParamNotSpecified
	}
	if name == "port" {
		return ValidatePort(value)
	}
	return nil
}

// ValidatePort accepts a decimal TCP port in the range 1-65535.
func ValidatePort(value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q: %w", value, ErrParamNotSpecified)
	}
	return nil
}

// Status is the outcome of a single probe.
type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result records what happened to one probe during a run.
type Result struct {
	ID          ActionID
	CommandLine string
	Status      Status
	Bytes       int
	Err         error
}
