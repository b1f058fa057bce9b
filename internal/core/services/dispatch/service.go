package dispatch

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/apache/internal/core/domain/probe"
	"github.com/AntonioJCosta/apache/internal/core/ports"
	"go.uber.org/zap"
)

// ErrUnknownProbe is recorded for an action the catalog does not define.
var ErrUnknownProbe = errors.New("unknown probe")

type service struct {
	catalog   ports.ProbeCatalog
	executor  ports.ProcessExecutor
	presenter ports.ProbePresenter
	logger    *zap.Logger
}

// NewService creates a new dispatch service.
// It panics if catalog, executor or presenter are nil. A nil logger disables logging.
func NewService(
	catalog ports.ProbeCatalog,
	executor ports.ProcessExecutor,
	presenter ports.ProbePresenter,
	logger *zap.Logger,
) ports.DispatchService {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	if presenter == nil {
		panic("presenter cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		catalog:   catalog,
		executor:  executor,
		presenter: presenter,
		logger:    logger,
	}
}

// Dispatch runs every requested probe in order, one at a time.
// Probes that need a parameter run after all others; "all" expands to the
// catalog's fixed sequence. A failed probe never stops the ones after it.
func (s *service) Dispatch(actions []probe.Action) []probe.Result {
	var results []probe.Result
	for _, action := range s.orderActions(actions) {
		if action.ID == probe.All {
			sequence := s.catalog.AllSequence()
			s.logger.Debug("running all probes", zap.Int("count", len(sequence)))
			for _, id := range sequence {
				results = append(results, s.runProbe(probe.Action{ID: id}))
			}
			continue
		}
		results = append(results, s.runProbe(action))
	}
	return results
}

func (s *service) runProbe(action probe.Action) probe.Result {
	log := s.logger.With(zap.String("probe", string(action.ID)))

	def, ok := s.catalog.Definition(action.ID)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownProbe, action.ID)
		s.presenter.Failure(action.ID, string(action.ID), err)
		return probe.Result{ID: action.ID, Status: probe.StatusFailed, Err: err}
	}

	commandLine, err := def.CommandLine(action.Param)
	if err != nil {
		log.Debug("probe skipped", zap.Error(err))
		s.presenter.ParamMissing(def)
		return probe.Result{ID: def.ID, Status: probe.StatusSkipped, Err: err}
	}

	log.Debug("executing probe", zap.String("command", commandLine))
	output, err := s.executor.Execute(commandLine)
	if err != nil {
		log.Debug("probe failed", zap.Error(err))
		s.presenter.Failure(def.ID, commandLine, err)
		return probe.Result{ID: def.ID, CommandLine: commandLine, Status: probe.StatusFailed, Err: err}
	}

	s.presenter.Output(def.ID, output)
	return probe.Result{ID: def.ID, CommandLine: commandLine, Status: probe.StatusOK, Bytes: len(output)}
}
