// Package engine implements an in-memory resolution engine: it matches
// registered transform stages by phase attribute and executes them on
// its own workers. It stands in for the external artifact-resolution
// engine behind ports.ResolutionEngine; the resolution core only ever
// sees the port.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ResolutionEngine = (*Engine)(nil)

type edge struct {
	from domain.Phase
	to   domain.Phase
}

type registration struct {
	edge   edge
	fn     ports.StageFunc
	params ports.StageParameters
}

// memoKey identifies one chain execution: the input artifact plus the
// phase it was driven to.
type memoKey struct {
	file   string
	origin domain.OriginIdentity
	phase  domain.Phase
}

// Engine executes registered transform stages in memory. Stage
// invocations for different artifacts run in parallel, bounded by the
// number of CPUs.
type Engine struct {
	tracer ports.Tracer
	logger ports.Logger

	mu     sync.Mutex
	stages map[edge]registration
	memo   map[memoKey][]domain.ResolvedArtifact
}

// New creates a new in-memory engine.
func New(tracer ports.Tracer, logger ports.Logger) *Engine {
	return &Engine{
		tracer: tracer,
		logger: logger,
		stages: make(map[edge]registration),
		memo:   make(map[memoKey][]domain.ResolvedArtifact),
	}
}

// RegisterStage declares a transform stage for the from -> to phase
// transition. Re-registering a transition replaces the previous stage
// and invalidates all memoized chain results; each dependency-handling
// scope registers its pipelines exactly once.
func (e *Engine) RegisterStage(from, to domain.Phase, fn ports.StageFunc, params ports.StageParameters) {
	e.mu.Lock()
	defer e.mu.Unlock()
	key := edge{from: from, to: to}
	e.stages[key] = registration{edge: key, fn: fn, params: params}
	e.memo = make(map[memoKey][]domain.ResolvedArtifact)
}

// RegisterConstraint records a version constraint on the configuration.
// Constraint enforcement during graph resolution is the engine's
// concern, not the resolution core's.
func (e *Engine) RegisterConstraint(cfg *domain.Configuration, constraint domain.VersionConstraint) {
	cfg.Constraints = append(cfg.Constraints, constraint)
	e.logger.Info(fmt.Sprintf("constraint on %s: require %s, reject %s", constraint.Module, constraint.Require, constraint.Reject))
}

// Select returns the artifacts of the configuration reachable at the
// given phase whose component matches the filter. Artifacts enter the
// system tagged not-instrumented; reaching any other phase executes the
// registered stage chain.
func (e *Engine) Select(ctx context.Context, cfg *domain.Configuration, phase domain.Phase, filter domain.ComponentFilter) ([]domain.ResolvedArtifact, error) {
	selected := make([]domain.ResolvedArtifact, 0, len(cfg.Dependencies))
	for _, dep := range cfg.Dependencies {
		if !filter(dep.Component) {
			continue
		}
		selected = append(selected, domain.ResolvedArtifact{
			File:  dep.File,
			ID:    domain.PlainIdentifier{Component: dep.Component},
			Phase: domain.PhaseNotInstrumented,
		})
	}

	if phase == domain.PhaseNotInstrumented {
		return selected, nil
	}

	chain, err := e.chainTo(phase)
	if err != nil {
		return nil, err
	}

	results := make([][]domain.ResolvedArtifact, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, artifact := range selected {
		g.Go(func() error {
			key := memoKey{file: artifact.File, origin: artifact.OriginIdentity(), phase: phase}
			if out, ok := e.memoized(key); ok {
				results[i] = out
				return nil
			}
			out, err := e.runChain(gctx, artifact, chain)
			if err != nil {
				return err
			}
			e.memoize(key, out)
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var artifacts []domain.ResolvedArtifact
	for _, out := range results {
		artifacts = append(artifacts, out...)
	}
	return artifacts, nil
}

// memoized returns a copy of the stored chain result, if any.
func (e *Engine) memoized(key memoKey) ([]domain.ResolvedArtifact, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out, ok := e.memo[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(out), true
}

func (e *Engine) memoize(key memoKey, out []domain.ResolvedArtifact) {
	e.mu.Lock()
	e.memo[key] = slices.Clone(out)
	e.mu.Unlock()
}

// chainTo finds the stage chain leading from the default phase to the
// target via a breadth-first walk over the registered transitions.
func (e *Engine) chainTo(target domain.Phase) ([]registration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	type step struct {
		phase domain.Phase
		chain []registration
	}
	queue := []step{{phase: domain.PhaseNotInstrumented}}
	visited := map[domain.Phase]bool{domain.PhaseNotInstrumented: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.phase == target {
			return cur.chain, nil
		}
		for key, reg := range e.stages {
			if key.from != cur.phase || visited[key.to] {
				continue
			}
			visited[key.to] = true
			chain := make([]registration, len(cur.chain), len(cur.chain)+1)
			copy(chain, cur.chain)
			queue = append(queue, step{phase: key.to, chain: append(chain, reg)})
		}
	}
	return nil, zerr.With(domain.ErrPhaseUnreachable, "phase", target.Label())
}

// runChain pushes one artifact through the stage chain. Intermediate
// stages may fan out into multiple artifacts; every output is fed into
// the next stage.
func (e *Engine) runChain(ctx context.Context, artifact domain.ResolvedArtifact, chain []registration) ([]domain.ResolvedArtifact, error) {
	current := []domain.ResolvedArtifact{artifact}
	for _, reg := range chain {
		var next []domain.ResolvedArtifact
		for _, in := range current {
			out, err := e.invoke(ctx, reg, in)
			if err != nil {
				return nil, err
			}
			next = append(next, out...)
		}
		current = next
	}
	return current, nil
}

// invoke runs a single stage on a single artifact, enforcing the input
// phase invariant and tagging outputs with the registered output phase.
func (e *Engine) invoke(ctx context.Context, reg registration, in domain.ResolvedArtifact) ([]domain.ResolvedArtifact, error) {
	if in.Phase != reg.edge.from {
		return nil, zerr.With(zerr.With(domain.ErrPhaseMismatch, "expected", reg.edge.from.Label()), "actual", in.Phase.Label())
	}

	name := fmt.Sprintf("%s -> %s: %s", reg.edge.from.Label(), reg.edge.to.Label(), filepath.Base(in.File))
	ctx, span := e.tracer.Start(ctx, name)
	defer span.End()

	out, err := reg.fn(ctx, in, reg.params)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, "stage execution failed"), "stage", name)
	}
	for i := range out {
		out[i].Phase = reg.edge.to
	}
	return out, nil
}
