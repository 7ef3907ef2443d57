package tlmgr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/texpkg/internal/core/ports"
)

// NodeID is the unique identifier for the tlmgr client Graft node.
const NodeID graft.ID = "adapter.tlmgr"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageManager, error) {
			return NewClient(), nil
		},
	})
}
