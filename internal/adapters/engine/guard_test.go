package engine //nolint:testpackage // Drives the unexported stage invocation guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clasp/internal/adapters/telemetry"
	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
)

type stubLogger struct{}

func (stubLogger) Info(string) {}
func (stubLogger) Error(error) {}

func identityStage(_ context.Context, in domain.ResolvedArtifact, _ ports.StageParameters) ([]domain.ResolvedArtifact, error) {
	return []domain.ResolvedArtifact{in}, nil
}

func TestInvoke_RejectsArtifactAtWrongPhase(t *testing.T) {
	e := New(telemetry.NewNoOpTracer(), stubLogger{})
	reg := registration{
		edge: edge{from: domain.PhaseAnalyzedArtifact, to: domain.PhaseMergedArtifactAnalysis},
		fn:   identityStage,
	}
	in := domain.ResolvedArtifact{
		File:  "/real/a.jar",
		ID:    domain.PlainIdentifier{Component: domain.ModuleComponentID{Group: "com.example", Name: "a", Version: "1.0"}},
		Phase: domain.PhaseNotInstrumented,
	}

	_, err := e.invoke(context.Background(), reg, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPhaseMismatch))
}

func TestInvoke_TagsOutputsWithRegisteredPhase(t *testing.T) {
	e := New(telemetry.NewNoOpTracer(), stubLogger{})
	reg := registration{
		edge: edge{from: domain.PhaseNotInstrumented, to: domain.PhaseAnalyzedArtifact},
		fn:   identityStage,
	}
	in := domain.ResolvedArtifact{
		File:  "/real/a.jar",
		ID:    domain.PlainIdentifier{Component: domain.ModuleComponentID{Group: "com.example", Name: "a", Version: "1.0"}},
		Phase: domain.PhaseNotInstrumented,
	}

	out, err := e.invoke(context.Background(), reg, in)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.PhaseAnalyzedArtifact, out[0].Phase)
}
