package resolver

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/clasp/internal/adapters/cache"
	"go.trai.ch/clasp/internal/adapters/logger"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/clasp/internal/transform"
)

const NodeID graft.ID = "resolver.main"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, transform.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			factory, err := graft.Dep[*cache.Factory](ctx)
			if err != nil {
				return nil, err
			}
			stages, err := graft.Dep[*transform.Stages](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			pipelines := Pipelines{
				Analysis:           stages.Analysis,
				Merge:              stages.Merge,
				ExternalInstrument: stages.ExternalInstrument,
				ProjectInstrument:  stages.ProjectInstrument,
			}
			newCache := func() ports.OriginalFileCache { return factory.NewService() }
			agentAvailable := os.Getenv("CLASP_AGENT") != ""
			return New(pipelines, newCache, agentAvailable, log), nil
		},
	})
}
