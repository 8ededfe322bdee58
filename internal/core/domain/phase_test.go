package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clasp/internal/core/domain"
)

func TestPhase_Labels(t *testing.T) {
	// Wire-level literals are the contract with the resolution engine's
	// attribute matching.
	expected := map[domain.Phase]string{
		domain.PhaseNotInstrumented:         "not-instrumented",
		domain.PhaseAnalyzedArtifact:        "analyzed-artifact",
		domain.PhaseMergedArtifactAnalysis:  "merged-artifact-analysis",
		domain.PhaseInstrumentedAndUpgraded: "instrumented-and-upgraded",
		domain.PhaseInstrumentedOnly:        "instrumented-only",
	}

	for phase, label := range expected {
		assert.Equal(t, label, phase.Label())

		back, err := domain.PhaseFromLabel(label)
		require.NoError(t, err)
		assert.Equal(t, phase, back)
	}
}

func TestPhaseFromLabel_Unknown(t *testing.T) {
	_, err := domain.PhaseFromLabel("instrumented")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPhase))
}
