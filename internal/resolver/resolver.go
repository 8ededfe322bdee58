// Package resolver implements instrumented classpath resolution: it
// registers the instrumentation pipelines on a resolution engine,
// scopes a build-scoped cache to each resolution, and assembles the
// pipeline outputs back into one ordered classpath.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/zerr"
)

// bannedLoggingConstraint keeps versions of log4j-core with known
// remote-code-execution vulnerabilities off every resolved classpath.
var bannedLoggingConstraint = domain.VersionConstraint{
	Module:  "org.apache.logging.log4j:log4j-core",
	Require: "2.17.1",
	Reject:  "[2.0,2.17.1)",
}

// CacheFactory creates one fresh build-scoped cache service per
// resolution context.
type CacheFactory func() ports.OriginalFileCache

// Resolver turns a declared configuration into an instrumented,
// ordered classpath.
type Resolver struct {
	pipelines      Pipelines
	newCache       CacheFactory
	agentAvailable bool
	logger         ports.Logger
}

// New creates a Resolver. agentAvailable reports whether a runtime
// instrumentation agent is present; it is passed through to the
// instrumenting stages untouched.
func New(pipelines Pipelines, newCache CacheFactory, agentAvailable bool, logger ports.Logger) *Resolver {
	return &Resolver{
		pipelines:      pipelines,
		newCache:       newCache,
		agentAvailable: agentAvailable,
		logger:         logger,
	}
}

// PrepareDependencies registers the instrumentation pipelines on the
// engine and opens a resolution context around a fresh cache service.
// Each call creates a distinct cache identity, so independent
// resolutions never share cache state.
func (r *Resolver) PrepareDependencies(engine ports.ResolutionEngine) *Context {
	rc := newContext(r.newCache(), engine)
	registerPipelines(rc, r.pipelines, r.agentAvailable)
	return rc
}

// PrepareConfiguration applies the runtime resolution attributes to the
// configuration and registers the banned-version constraint through the
// context's engine.
func (r *Resolver) PrepareConfiguration(cfg *domain.Configuration, rc *Context) {
	cfg.SetAttribute("usage", "runtime")
	cfg.SetAttribute("category", "library")
	cfg.SetAttribute("elements", "archive")
	cfg.SetAttribute("bundling", "external")
	rc.engine.RegisterConstraint(cfg, bannedLoggingConstraint)
}

// ResolveClassPath resolves the configuration through both
// instrumentation pipelines and returns the assembled classpath. The
// context's cache is cleared before this method returns, on success and
// on failure.
func (r *Resolver) ResolveClassPath(ctx context.Context, cfg *domain.Configuration, rc *Context) (domain.ClassPath, error) {
	return rc.RunAndClearCachedDataAfter(func(cache ports.OriginalFileCache) (domain.ClassPath, error) {
		originals, err := rc.engine.Select(ctx, cfg, domain.PhaseNotInstrumented, domain.NotPlatformAPI)
		if err != nil {
			return domain.ClassPath{}, zerr.Wrap(err, "failed to resolve original classpath")
		}
		rc.setOriginalClasspath(originals)

		analyzed, err := rc.engine.Select(ctx, cfg, domain.PhaseAnalyzedArtifact, domain.IsExternalComponent)
		if err != nil {
			return domain.ClassPath{}, zerr.Wrap(err, "failed to analyze classpath")
		}
		rc.setAnalysisResult(analyzed)

		classpath, err := assemble(ctx, rc.engine, cache, cfg, originals)
		if err != nil {
			return domain.ClassPath{}, zerr.With(zerr.Wrap(err, "failed to assemble classpath"), "configuration", cfg.Name)
		}
		r.logger.Info(fmt.Sprintf("resolved %s: %d entries", cfg.Name, classpath.Len()))
		return classpath, nil
	})
}
