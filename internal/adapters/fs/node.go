package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texpkg/internal/core/ports"
)

// ResolverNodeID is the unique identifier for the source resolver Graft node.
const ResolverNodeID graft.ID = "adapter.fs.resolver"

func init() {
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceResolver, error) {
			return NewResolver(), nil
		},
	})
}
