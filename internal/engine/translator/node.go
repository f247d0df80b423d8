package translator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xmk/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/xmk/internal/core/ports"
)

// NodeID is the unique identifier for the translator Graft node.
const NodeID graft.ID = "engine.translator"

func init() {
	graft.Register(graft.Node[*Translator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Translator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
