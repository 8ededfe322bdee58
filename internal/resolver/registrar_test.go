package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/clasp/internal/adapters/cache"
	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/clasp/internal/core/ports/mocks"
	"go.trai.ch/clasp/internal/resolver"
	"go.uber.org/mock/gomock"
)

type recordedStage struct {
	from   domain.Phase
	to     domain.Phase
	fn     ports.StageFunc
	params ports.StageParameters
}

func TestPrepareDependencies_RegistersBothPipelines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockResolutionEngine(ctrl)

	var recorded []recordedStage
	mockEngine.EXPECT().
		RegisterStage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(from, to domain.Phase, fn ports.StageFunc, params ports.StageParameters) {
			recorded = append(recorded, recordedStage{from: from, to: to, fn: fn, params: params})
		}).
		Times(4)

	factory := cache.NewFactory()
	res := resolver.New(
		scenarioPipelines(),
		func() ports.OriginalFileCache { return factory.NewService() },
		true, // agent available
		nopLogger{},
	)

	rc := res.PrepareDependencies(mockEngine)
	require.NotNil(t, rc)
	require.Len(t, recorded, 4)

	byEdge := make(map[[2]domain.Phase]recordedStage, len(recorded))
	for _, r := range recorded {
		byEdge[[2]domain.Phase{r.from, r.to}] = r
	}

	analysis, ok := byEdge[[2]domain.Phase{domain.PhaseNotInstrumented, domain.PhaseAnalyzedArtifact}]
	require.True(t, ok, "analysis stage not registered")
	assert.NotNil(t, analysis.params.Cache)
	assert.Nil(t, analysis.params.OriginalClasspath)
	assert.Nil(t, analysis.params.AnalysisResult)

	merge, ok := byEdge[[2]domain.Phase{domain.PhaseAnalyzedArtifact, domain.PhaseMergedArtifactAnalysis}]
	require.True(t, ok, "merge stage not registered")
	assert.NotNil(t, merge.params.Cache)
	assert.NotNil(t, merge.params.OriginalClasspath)
	assert.NotNil(t, merge.params.AnalysisResult)

	external, ok := byEdge[[2]domain.Phase{domain.PhaseMergedArtifactAnalysis, domain.PhaseInstrumentedAndUpgraded}]
	require.True(t, ok, "external instrument stage not registered")
	assert.NotNil(t, external.params.Cache)
	assert.True(t, external.params.AgentAvailable)

	project, ok := byEdge[[2]domain.Phase{domain.PhaseNotInstrumented, domain.PhaseInstrumentedOnly}]
	require.True(t, ok, "project instrument stage not registered")
	assert.NotNil(t, project.params.Cache)
	assert.Nil(t, project.params.OriginalClasspath)
	assert.True(t, project.params.AgentAvailable)
}

func TestPrepareDependencies_DistinctCachePerContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := mocks.NewMockResolutionEngine(ctrl)

	var caches []ports.OriginalFileCache
	mockEngine.EXPECT().
		RegisterStage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_, _ domain.Phase, _ ports.StageFunc, params ports.StageParameters) {
			caches = append(caches, params.Cache)
		}).
		Times(8)

	factory := cache.NewFactory()
	res := resolver.New(
		scenarioPipelines(),
		func() ports.OriginalFileCache { return factory.NewService() },
		false,
		nopLogger{},
	)

	res.PrepareDependencies(mockEngine)
	res.PrepareDependencies(mockEngine)
	require.Len(t, caches, 8)

	// All four registrations of one scope share one cache service;
	// the second scope gets a different one.
	first, second := caches[0].(*cache.Service), caches[4].(*cache.Service)
	for i := 0; i < 4; i++ {
		assert.Same(t, first, caches[i].(*cache.Service))
		assert.Same(t, second, caches[4+i].(*cache.Service))
	}
	assert.NotEqual(t, first.ID(), second.ID())
}
