package commands

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/clock"
	"tableflip.dev/studyhub/pkg/commands/options"
	"tableflip.dev/studyhub/pkg/logging"
	"tableflip.dev/studyhub/pkg/store"
)

// env is what a command needs at run time, opened on first use.
type env struct {
	co *options.ConfigOptions

	cfg     *store.Config
	logger  *log.Logger
	closers []io.Closer
	store   *store.Store
	service *app.Service
}

func (e *env) config() (*store.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	cfg, err := store.LoadConfig(e.co.File)
	if err != nil {
		return nil, err
	}
	if e.co.Backend != "" {
		cfg.Backend = e.co.Backend
	}
	e.cfg = cfg
	return cfg, nil
}

// log returns the logger, defaulting to level when neither the flag nor the
// config sets one.
func (e *env) log(level string) (*log.Logger, error) {
	if e.logger != nil {
		return e.logger, nil
	}
	cfg, err := e.config()
	if err != nil {
		return nil, err
	}
	switch {
	case e.co.LogLevel != "":
		level = e.co.LogLevel
	case cfg.Log.Level != "":
		level = cfg.Log.Level
	}

	var w io.Writer = os.Stderr
	if cfg.Log.Path != "" {
		f, err := logging.OpenFile(cfg.Log.Path)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, f)
		w = f
	}
	e.logger = logging.New(logging.Options{Writer: w, Level: level, Prefix: "studyhub"})
	return e.logger, nil
}

// open connects the configured backend and loads the collections.
func (e *env) open(ctx context.Context, level string) (*app.Service, error) {
	if e.service != nil {
		return e.service, nil
	}
	cfg, err := e.config()
	if err != nil {
		return nil, err
	}
	logger, err := e.log(level)
	if err != nil {
		return nil, err
	}
	p, err := store.OpenPersistence(cfg)
	if err != nil {
		return nil, err
	}
	e.closers = append(e.closers, p)
	if d, ok := p.(*store.Diskv); ok {
		d.Logger = logger
	}
	logger.Debug("opened persistence", "backend", cfg.Backend)

	st, err := store.Open(ctx, p, logger)
	if err != nil {
		return nil, err
	}
	e.store = st
	e.service = app.New(st, clock.Real(), logger)
	return e.service, nil
}

// Close releases everything open, newest first.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	e.closers = nil
	return errors.Join(errs...)
}
