// Package domain contains the core domain types of the instrumented
// classpath resolution: phases, components, artifacts, configurations
// and the assembled classpath.
package domain

import "go.trai.ch/zerr"

// InstrumentedAttribute is the attribute key under which artifacts
// carry their instrumentation phase through the resolution engine.
const InstrumentedAttribute = "ch.trai.clasp.instrumented"

// Phase is the instrumentation state of an artifact. Artifacts enter
// the system tagged PhaseNotInstrumented; transform stages move them
// along one of the two pipelines.
type Phase int

const (
	// PhaseNotInstrumented is the default phase of every resolved
	// artifact before any stage touched it.
	PhaseNotInstrumented Phase = iota

	// PhaseAnalyzedArtifact marks an external artifact whose content was
	// hashed and registered in the build-scoped cache.
	PhaseAnalyzedArtifact

	// PhaseMergedArtifactAnalysis marks an analyzed artifact that was
	// cross-checked against the original classpath contents.
	PhaseMergedArtifactAnalysis

	// PhaseInstrumentedAndUpgraded is the terminal phase of the external
	// pipeline.
	PhaseInstrumentedAndUpgraded

	// PhaseInstrumentedOnly is the terminal phase of the project
	// pipeline.
	PhaseInstrumentedOnly
)

// phaseLabels holds the wire-level literals matched by the engine's
// attribute handling. They never change without a coordinated engine
// upgrade.
var phaseLabels = map[Phase]string{
	PhaseNotInstrumented:         "not-instrumented",
	PhaseAnalyzedArtifact:        "analyzed-artifact",
	PhaseMergedArtifactAnalysis:  "merged-artifact-analysis",
	PhaseInstrumentedAndUpgraded: "instrumented-and-upgraded",
	PhaseInstrumentedOnly:        "instrumented-only",
}

// Label returns the phase's wire-level attribute value.
func (p Phase) Label() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return "unknown"
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	return p.Label()
}

// PhaseFromLabel parses a wire-level attribute value back into a Phase.
func PhaseFromLabel(label string) (Phase, error) {
	for phase, l := range phaseLabels {
		if l == label {
			return phase, nil
		}
	}
	return 0, zerr.With(ErrUnknownPhase, "label", label)
}
