package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prism/internal/adapters/calcnode" //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/engine/compilation"
	"go.trai.ch/prism/internal/engine/depgraph"
	"go.trai.ch/prism/internal/engine/statistics"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			compilation.NodeID,
			depgraph.NodeID,
			calcnode.NodeID,
			statistics.NodeID,
			statistics.DiscardingNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[*compilation.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	builders, err := graft.Dep[ports.DependencyGraphBuilderFactory](ctx)
	if err != nil {
		return nil, err
	}

	node, err := graft.Dep[ports.CalculationNode](ctx)
	if err != nil {
		return nil, err
	}

	stats, err := graft.Dep[*statistics.PerViewProvider[*statistics.TotallingGatherer]](ctx)
	if err != nil {
		return nil, err
	}

	discarding, err := graft.Dep[*statistics.DiscardingGathererProvider](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, compiler, builders, node, stats, discarding), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
