package cache

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.cache_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Factory, error) {
			return NewFactory(), nil
		},
	})
}
