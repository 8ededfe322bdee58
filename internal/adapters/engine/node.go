package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clasp/internal/adapters/logger"
	"go.trai.ch/clasp/internal/adapters/telemetry"
	"go.trai.ch/clasp/internal/core/ports"
)

const NodeID graft.ID = "adapter.engine"

func init() {
	graft.Register(graft.Node[ports.ResolutionEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ResolutionEngine, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(tracer, log), nil
		},
	})
}
