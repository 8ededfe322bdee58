package transform

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/clasp/internal/adapters/fs"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/zerr"
)

const NodeID graft.ID = "transform.stages"

func init() {
	graft.Register(graft.Node[*Stages]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*Stages, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			workDir := filepath.Join(".clasp", "transforms")
			if err := os.MkdirAll(workDir, 0o750); err != nil {
				return nil, zerr.Wrap(err, "failed to create transform work dir")
			}
			return NewStages(workDir, hasher), nil
		},
	})
}
