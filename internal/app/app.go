// Package app implements the application layer for rcdb.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/rcdb/internal/core/domain"
	"go.trai.ch/rcdb/internal/core/ports"
	"go.trai.ch/rcdb/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App exposes argument resolution to the CLI and the downstream indexer.
type App struct {
	logger    ports.Logger
	db        *resolver.Database
	telemetry ports.Telemetry
	warmJobs  int
}

// New creates a new App instance.
func New(logger ports.Logger, db *resolver.Database, telemetry ports.Telemetry, cfg *domain.Config) *App {
	return &App{
		logger:    logger,
		db:        db,
		telemetry: telemetry,
		warmJobs:  cfg.WarmJobs,
	}
}

// ArgsForFile returns the best-known compiler argument list for the
// translation unit at path. An empty list is a valid, non-error answer.
func (a *App) ArgsForFile(ctx context.Context, path string) (domain.ArgumentSet, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve absolute path")
	}
	args, _ := a.db.Resolve(ctx, abs)
	return args, nil
}

// TranslationUnits lists the source files currently known to belong to the
// active project.
func (a *App) TranslationUnits() []string {
	return a.db.TranslationUnits()
}

// Warm pre-resolves arguments for every known translation unit so that the
// index can be populated without per-file resolution latency. Resolution
// failures degrade to empty argument sets and do not abort the warm-up.
func (a *App) Warm(ctx context.Context) error {
	units := a.db.TranslationUnits()
	if len(units) == 0 {
		a.logger.Info("no translation units to warm")
		return nil
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.warmJobs)

	for _, unit := range units {
		g.Go(func() error {
			_, vertex := a.telemetry.Record(groupCtx, filepath.Base(unit))
			args, cached := a.db.Resolve(groupCtx, unit)
			if cached {
				vertex.Cached()
			}
			if args.Empty() {
				vertex.Log(domain.LogLevelWarn, "no arguments resolved")
			}
			vertex.Complete(groupCtx.Err())
			return groupCtx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "warm-up interrupted")
	}
	return a.telemetry.Close()
}
