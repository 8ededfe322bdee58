package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/clasp/internal/core/ports"
)

const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.ContentHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ContentHasher, error) {
			return NewHasher(), nil
		},
	})
}
