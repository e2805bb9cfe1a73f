package calcnode

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prism/internal/adapters/logger"
	"go.trai.ch/prism/internal/adapters/telemetry"
	"go.trai.ch/prism/internal/core/ports"
)

// NodeID is the unique identifier for the calculation node Graft node.
const NodeID graft.ID = "adapter.calcnode"

func init() {
	graft.Register(graft.Node[ports.CalculationNode]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.TracerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CalculationNode, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocal(tracer, log), nil
		},
	})
}
