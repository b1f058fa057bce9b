package oscommand

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/AntonioJCosta/apache/internal/core/ports"
	"go.uber.org/zap"
)

// DefaultChunkSize is the size of a single read from the probe's output pipe.
const DefaultChunkSize = 1024

// Config controls how command lines are run.
type Config struct {
	// Shell interprets the command line. Empty selects /bin/sh, or cmd on Windows.
	Shell string
	// ChunkSize bounds each read from the output pipe. Zero selects DefaultChunkSize.
	ChunkSize int
	// MaxOutputBytes caps captured output. Zero means unlimited.
	MaxOutputBytes int
}

// OSCommandExecutor implements ports.ProcessExecutor by handing the command
// line to the host shell, the same way popen(3) does.
type OSCommandExecutor struct {
	shell          string
	shellFlag      string
	chunkSize      int
	maxOutputBytes int
	stdin          io.Reader
	stderr         io.Writer
	logger         *zap.Logger
}

// NewOSCommandExecutor creates a new OSCommandExecutor. A nil logger disables logging.
func NewOSCommandExecutor(cfg Config, logger *zap.Logger) ports.ProcessExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	shell := cfg.Shell
	if shell == "" {
		shell = DefaultShell()
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &OSCommandExecutor{
		shell:          shell,
		shellFlag:      shellFlagFor(shell),
		chunkSize:      chunkSize,
		maxOutputBytes: cfg.MaxOutputBytes,
		stdin:          os.Stdin,
		stderr:         os.Stderr,
		logger:         logger,
	}
}

// DefaultShell returns the platform shell used when none is configured.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "/bin/sh"
}

func shellFlagFor(shell string) string {
	base := strings.ToLower(strings.TrimSuffix(filepath.Base(shell), ".exe"))
	if base == "cmd" {
		return "/C"
	}
	return "-c"
}

// Execute runs commandLine and returns its complete standard output.
// The child's standard error and standard input are inherited. A non-zero
// exit status is not an error: whatever the probe printed is still its report.
func (e *OSCommandExecutor) Execute(commandLine string) (string, error) {
	if commandLine == "" {
		return "", ErrEmptyCommand
	}
	log := e.logger.With(zap.String("command", commandLine))

	cmd := exec.Command(e.shell, e.shellFlag, commandLine)
	cmd.Stdin = e.stdin
	cmd.Stderr = e.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", &ExecError{Stage: StageSpawn, Command: commandLine, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return "", &ExecError{Stage: StageSpawn, Command: commandLine, Err: err}
	}
	log.Debug("probe started", zap.Int("pid", cmd.Process.Pid))

	output, drainErr := drain(stdout, e.chunkSize, e.maxOutputBytes)
	if drainErr != nil {
		// Close our end first so a child still writing gets EPIPE instead of
		// blocking Wait forever.
		_ = stdout.Close()
	}
	waitErr := cmd.Wait()

	if drainErr != nil {
		log.Debug("probe output discarded", zap.Error(drainErr))
		return "", &ExecError{Stage: stageOf(drainErr), Command: commandLine, Err: drainErr}
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		log.Debug("probe exited with non-zero status", zap.Int("exit_code", exitErr.ExitCode()))
	case waitErr != nil:
		log.Debug("waiting for probe failed", zap.Error(waitErr))
	}
	log.Debug("probe finished", zap.Int("bytes", len(output)))

	return string(output), nil
}
