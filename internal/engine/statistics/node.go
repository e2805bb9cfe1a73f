package statistics

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the totalling statistics provider Graft node.
	NodeID graft.ID = "engine.statistics"
	// DiscardingNodeID is the unique identifier for the discarding provider Graft node.
	DiscardingNodeID graft.ID = "engine.statistics.discarding"
)

func init() {
	graft.Register(graft.Node[*PerViewProvider[*TotallingGatherer]]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*PerViewProvider[*TotallingGatherer], error) {
			return NewTotallingProvider(), nil
		},
	})

	graft.Register(graft.Node[*DiscardingGathererProvider]{
		ID:        DiscardingNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*DiscardingGathererProvider, error) {
			return NewDiscardingGathererProvider(DiscardingGatherer{}), nil
		},
	})
}
