package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheInconsistency is returned when a placeholder's hash has no
	// corresponding entry in the build-scoped cache. A stage emitted a
	// placeholder without registering the original file, or the cache
	// was cleared prematurely. Fatal for the resolution, never retried.
	ErrCacheInconsistency = zerr.New("no original file stored for hash")

	// ErrMalformedTransformedArtifact is returned when an artifact that
	// must originate from a transform stage does not carry origin
	// back-reference metadata. Indicates a buggy or incompatible stage.
	ErrMalformedTransformedArtifact = zerr.New("transformed artifact is missing origin metadata")

	// ErrUnknownPhase is returned when a wire label does not name one of
	// the five instrumentation phases.
	ErrUnknownPhase = zerr.New("unknown instrumentation phase")

	// ErrPhaseMismatch is returned when a stage is invoked on an
	// artifact that is not tagged with the stage's input phase.
	ErrPhaseMismatch = zerr.New("artifact is not at the stage's input phase")

	// ErrPhaseUnreachable is returned when no registered chain of stages
	// leads from the default phase to a queried phase.
	ErrPhaseUnreachable = zerr.New("no stage path reaches phase")

	// ErrNotOnOriginalClasspath is returned by the merge stage when an
	// analyzed artifact cannot be matched against the original,
	// untransformed classpath contents.
	ErrNotOnOriginalClasspath = zerr.New("artifact not found on original classpath")

	// ErrAnalysisMissing is returned by the merge stage when the
	// analyzed-artifact view carries no analysis for an artifact that
	// is being merged.
	ErrAnalysisMissing = zerr.New("no analysis recorded for artifact")
)

// withArtifact attaches the artifact's file and component to an error.
func withArtifact(err error, a ResolvedArtifact) error {
	return zerr.With(zerr.With(err, "file", a.File), "component", a.ID.ComponentID().String())
}

