package ports

import (
	"context"

	"go.trai.ch/clasp/internal/core/domain"
)

// StageFunc is one opaque transform stage. The engine only invokes it
// on artifacts tagged with the stage's registered input phase and tags
// every output with the registered output phase. Invocations may run
// concurrently on engine-owned workers, so implementations must be
// safe to call in parallel.
//
//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type StageFunc func(ctx context.Context, in domain.ResolvedArtifact, params StageParameters) ([]domain.ResolvedArtifact, error)

// ClasspathProvider lazily supplies the original, untransformed
// classpath contents. It is late-bound: registration happens before the
// configuration is resolved.
type ClasspathProvider func() []domain.ResolvedArtifact

// StageParameters is the parameter bag attached to a stage
// registration.
type StageParameters struct {
	// Cache is the build-scoped cache service of the resolution the
	// stage runs in.
	Cache OriginalFileCache
	// OriginalClasspath supplies the pre-transform artifact set. Only
	// set on the merge stage, which cross-checks analysis results
	// against it.
	OriginalClasspath ClasspathProvider
	// AnalysisResult supplies the analyzed-artifact view of the
	// configuration's external dependencies. Only set on the merge
	// stage; bound late, after the view has been materialized.
	AnalysisResult ClasspathProvider
	// AgentAvailable reports whether a runtime instrumentation agent is
	// available; it selects the instrumentation strategy of the opaque
	// instrumenting stages.
	AgentAvailable bool
}

// ResolutionEngine is the minimal contract with the external
// dependency-resolution and attribute-matching engine. The module
// declares phase-to-phase stage edges and queries artifacts by phase;
// scheduling, attribute matching and graph resolution belong to the
// engine.
type ResolutionEngine interface {
	// RegisterStage declares a transform stage for the from -> to phase
	// transition. The engine guarantees it only invokes fn on artifacts
	// currently tagged from, and tags outputs to.
	RegisterStage(from, to domain.Phase, fn StageFunc, params StageParameters)

	// Select returns the artifacts of the configuration reachable at
	// the given phase whose component matches the filter.
	Select(ctx context.Context, cfg *domain.Configuration, phase domain.Phase, filter domain.ComponentFilter) ([]domain.ResolvedArtifact, error)

	// RegisterConstraint attaches a version constraint to the
	// configuration before it resolves.
	RegisterConstraint(cfg *domain.Configuration, constraint domain.VersionConstraint)
}
