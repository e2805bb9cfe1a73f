package compilation

import (
	"iter"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/zerr"
)

// CompiledGraph is a validated dependency graph held by a ViewEvaluationModel.
// It exposes the graph read-only together with the execution order computed
// at compilation, so executions never touch the underlying graph.
type CompiledGraph struct {
	graph *domain.DependencyGraph
	order []*domain.DependencyNode
}

func newCompiledGraph(g *domain.DependencyGraph) (*CompiledGraph, error) {
	order, err := g.ExecutionOrder()
	if err != nil {
		return nil, zerr.With(err, "calc_config", g.CalculationConfigurationName())
	}
	return &CompiledGraph{graph: g, order: order}, nil
}

// CalculationConfigurationName returns the name of the owning configuration.
func (c *CompiledGraph) CalculationConfigurationName() string {
	return c.graph.CalculationConfigurationName()
}

// NodeCount returns the number of nodes.
func (c *CompiledGraph) NodeCount() int { return c.graph.NodeCount() }

// Nodes yields the nodes in insertion order.
func (c *CompiledGraph) Nodes() iter.Seq[*domain.DependencyNode] { return c.graph.Nodes() }

// Producer returns the node producing spec.
func (c *CompiledGraph) Producer(spec domain.ValueSpecification) (*domain.DependencyNode, bool) {
	return c.graph.Producer(spec)
}

// TerminalOutputs returns the requested outputs and the requirements they satisfy.
func (c *CompiledGraph) TerminalOutputs() map[domain.ValueSpecification][]domain.ValueRequirement {
	return c.graph.TerminalOutputs()
}

// OutputSpecifications returns every value produced in the graph, sorted.
func (c *CompiledGraph) OutputSpecifications() []domain.ValueSpecification {
	return c.graph.OutputSpecifications()
}

// AllRequiredLiveData returns the market data values the graph consumes, sorted.
func (c *CompiledGraph) AllRequiredLiveData() []domain.ValueSpecification {
	return c.graph.AllRequiredLiveData()
}

// ComputationTargets returns the distinct targets of the graph's nodes.
func (c *CompiledGraph) ComputationTargets() []domain.ComputationTargetSpecification {
	return c.graph.ComputationTargets()
}

// Walk yields nodes so that every node follows the producers of its inputs.
func (c *CompiledGraph) Walk() iter.Seq[*domain.DependencyNode] {
	return func(yield func(*domain.DependencyNode) bool) {
		for _, n := range c.order {
			if !yield(n) {
				return
			}
		}
	}
}
