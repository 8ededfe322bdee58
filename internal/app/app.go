// Package app implements the application layer for clasp.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/clasp/internal/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	engine       ports.ResolutionEngine
	resolver     *resolver.Resolver
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, engine ports.ResolutionEngine, res *resolver.Resolver, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		engine:       engine,
		resolver:     res,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithOutput redirects the resolved classpath output. Used by tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// Resolve runs one classpath resolution for the workspace in cwd and
// prints the assembled classpath, one file per line.
func (a *App) Resolve(ctx context.Context, cwd string) error {
	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace configuration")
	}

	rc := a.resolver.PrepareDependencies(a.engine)
	a.resolver.PrepareConfiguration(cfg, rc)

	classpath, err := a.resolver.ResolveClassPath(ctx, cfg, rc)
	if err != nil {
		return zerr.Wrap(err, "classpath resolution failed")
	}

	for _, file := range classpath.Files() {
		if _, err := fmt.Fprintln(a.stdout, file); err != nil {
			return zerr.Wrap(err, "failed to write classpath")
		}
	}
	return nil
}
