package latex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texpkg/internal/core/ports"
)

// NodeID is the unique identifier for the extractor Graft node.
const NodeID graft.ID = "adapter.latex.extractor"

func init() {
	graft.Register(graft.Node[ports.DependencyExtractor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyExtractor, error) {
			return NewExtractor(), nil
		},
	})
}
