package resolver

import (
	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
)

// Pipelines bundles the four opaque stage functions wired into the
// phase transitions. Stage internals are not this module's concern.
type Pipelines struct {
	Analysis           ports.StageFunc
	Merge              ports.StageFunc
	ExternalInstrument ports.StageFunc
	ProjectInstrument  ports.StageFunc
}

// registerPipelines declares the two instrumentation pipelines on the
// engine, exactly once per dependency-handling scope.
//
// External dependencies take the long path so unchanged archives can
// pass through the cache instead of being recopied:
//
//	not-instrumented -> analyzed-artifact -> merged-artifact-analysis -> instrumented-and-upgraded
//
// Project dependencies are always rebuilt fresh and need no
// cross-artifact analysis, so they bypass analysis and merge:
//
//	not-instrumented -> instrumented-only
func registerPipelines(rc *Context, pipelines Pipelines, agentAvailable bool) {
	rc.engine.RegisterStage(
		domain.PhaseNotInstrumented, domain.PhaseAnalyzedArtifact,
		pipelines.Analysis,
		ports.StageParameters{Cache: rc.cache},
	)
	rc.engine.RegisterStage(
		domain.PhaseAnalyzedArtifact, domain.PhaseMergedArtifactAnalysis,
		pipelines.Merge,
		ports.StageParameters{Cache: rc.cache, OriginalClasspath: rc.originalClasspath, AnalysisResult: rc.analysisResult},
	)
	rc.engine.RegisterStage(
		domain.PhaseMergedArtifactAnalysis, domain.PhaseInstrumentedAndUpgraded,
		pipelines.ExternalInstrument,
		ports.StageParameters{Cache: rc.cache, AgentAvailable: agentAvailable},
	)
	rc.engine.RegisterStage(
		domain.PhaseNotInstrumented, domain.PhaseInstrumentedOnly,
		pipelines.ProjectInstrument,
		ports.StageParameters{Cache: rc.cache, AgentAvailable: agentAvailable},
	)
}
