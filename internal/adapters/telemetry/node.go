package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/clasp/internal/adapters/telemetry/progrock"
	"go.trai.ch/clasp/internal/core/ports"
)

const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Tracer, error) {
			// Progress rendering is opt-in: resolution output goes to
			// stdout and must stay machine-readable by default.
			if os.Getenv("CLASP_PROGRESS") != "" {
				return progrock.New(), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
