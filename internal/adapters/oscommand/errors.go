package oscommand

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCommand is returned without spawning anything.
	ErrEmptyCommand = errors.New("command line is empty")
	// ErrRead wraps a pipe error seen before end of stream.
	ErrRead = errors.New("reading probe output")
	// ErrOutputTooLarge is the allocation failure: the output buffer may not grow further.
	ErrOutputTooLarge = errors.New("probe output exceeds buffer limit")
)

// Stage names the step of an execution that failed.
type Stage string

const (
	StageSpawn Stage = "spawn"
	StageRead  Stage = "read"
	StageAlloc Stage = "alloc"
)

// ExecError describes a failed probe execution.
type ExecError struct {
	Stage   Stage
	Command string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s failed for %q: %v", e.Stage, e.Command, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

func stageOf(err error) Stage {
	if errors.Is(err, ErrOutputTooLarge) {
		return StageAlloc
	}
	return StageRead
}
