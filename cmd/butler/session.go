package main

import (
	"fmt"
	"io"
	"os"

	"github.com/amonks/butler/history"
	"github.com/amonks/butler/internal/config"
	"github.com/amonks/butler/internal/logging"
	"github.com/amonks/butler/interpreter"
	"github.com/amonks/butler/journal"
	"github.com/amonks/butler/task"
	"go.uber.org/zap"
)

// session is everything one butler invocation shares: the in-memory
// stores, the command history, and the dispatcher writing to them.
type session struct {
	cfg        *config.Config
	logger     *zap.Logger
	tasks      *task.Store
	journal    *journal.Store
	history    *history.Log
	dispatcher *interpreter.Dispatcher
}

// openSession loads config and wires a dispatcher. Logs go to logOutput.
func openSession(logOutput io.Writer) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.New(logOutput, rootVerbose || cfg.Log.Verbose)
	s := &session{
		cfg:     cfg,
		logger:  logger,
		tasks:   task.NewStore(),
		journal: journal.NewStore(),
		history: history.New(),
	}
	s.dispatcher = interpreter.New(s.tasks, s.journal, s.history, interpreter.Options{
		Logger:          logger,
		MutationTimeout: cfg.Interpreter.MutationTimeout.Duration,
		Queue:           cfg.Interpreter.Queue,
	})
	return s, nil
}

func (s *session) Close() {
	_ = s.logger.Sync()
}

func loadConfig() (*config.Config, error) {
	if rootConfigPath != "" {
		if _, err := os.Stat(rootConfigPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		return config.LoadFile(rootConfigPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.Load(cwd)
}
