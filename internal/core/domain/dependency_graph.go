// Package domain contains the core domain models of view compilation: identifiers,
// the position model, view definitions and dependency graphs.
package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ValueSpecification is a resolved ValueRequirement: the value a function
// produces on a specific target.
type ValueSpecification struct {
	ValueName  string
	Target     ComputationTargetSpecification
	FunctionID string
}

func (s ValueSpecification) String() string {
	return s.ValueName + "@" + s.Target.String() + "/" + s.FunctionID
}

func compareValueSpecifications(a, b ValueSpecification) int {
	return strings.Compare(a.String(), b.String())
}

// DependencyNode is the application of one function to one target.
type DependencyNode struct {
	FunctionID string
	Target     ComputationTarget
	Inputs     []ValueSpecification
	Outputs    []ValueSpecification
	// LiveData marks nodes that source market data instead of computing.
	LiveData bool
}

// DependencyGraph is the DAG of function applications for one calculation configuration.
type DependencyGraph struct {
	calcConfigName string
	nodes          []*DependencyNode
	producers      map[ValueSpecification]*DependencyNode
	terminals      map[ValueSpecification][]ValueRequirement
}

// NewDependencyGraph creates an empty graph for a calculation configuration.
func NewDependencyGraph(calcConfigName string) *DependencyGraph {
	return &DependencyGraph{
		calcConfigName: calcConfigName,
		producers:      make(map[ValueSpecification]*DependencyNode),
		terminals:      make(map[ValueSpecification][]ValueRequirement),
	}
}

// CalculationConfigurationName returns the name of the owning configuration.
func (g *DependencyGraph) CalculationConfigurationName() string {
	return g.calcConfigName
}

// AddNode adds a node to the graph.
// It returns an error if another node already produces one of its outputs.
func (g *DependencyGraph) AddNode(n *DependencyNode) error {
	for _, out := range n.Outputs {
		if _, exists := g.producers[out]; exists {
			return zerr.With(ErrDuplicateOutput, "value", out.String())
		}
	}
	for _, out := range n.Outputs {
		g.producers[out] = n
	}
	g.nodes = append(g.nodes, n)
	return nil
}

// AddTerminalOutput marks spec as satisfying a requested requirement.
func (g *DependencyGraph) AddTerminalOutput(spec ValueSpecification, req ValueRequirement) error {
	if _, exists := g.producers[spec]; !exists {
		return zerr.With(ErrMissingProducer, "value", spec.String())
	}
	g.terminals[spec] = append(g.terminals[spec], req)
	return nil
}

// Producer returns the node producing spec.
func (g *DependencyGraph) Producer(spec ValueSpecification) (*DependencyNode, bool) {
	n, ok := g.producers[spec]
	return n, ok
}

// NodeCount returns the number of nodes.
func (g *DependencyGraph) NodeCount() int {
	return len(g.nodes)
}

// Nodes yields the nodes in insertion order.
func (g *DependencyGraph) Nodes() iter.Seq[*DependencyNode] {
	return func(yield func(*DependencyNode) bool) {
		for _, n := range g.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// TerminalOutputs returns the requested outputs and the requirements they satisfy.
func (g *DependencyGraph) TerminalOutputs() map[ValueSpecification][]ValueRequirement {
	out := make(map[ValueSpecification][]ValueRequirement, len(g.terminals))
	for spec, reqs := range g.terminals {
		out[spec] = slices.Clone(reqs)
	}
	return out
}

// OutputSpecifications returns every value produced in the graph, sorted.
func (g *DependencyGraph) OutputSpecifications() []ValueSpecification {
	specs := make([]ValueSpecification, 0, len(g.producers))
	for spec := range g.producers {
		specs = append(specs, spec)
	}
	slices.SortFunc(specs, compareValueSpecifications)
	return specs
}

// AllRequiredLiveData returns the market data values the graph consumes, sorted.
func (g *DependencyGraph) AllRequiredLiveData() []ValueSpecification {
	var specs []ValueSpecification
	for _, n := range g.nodes {
		if n.LiveData {
			specs = append(specs, n.Outputs...)
		}
	}
	slices.SortFunc(specs, compareValueSpecifications)
	return specs
}

// ComputationTargets returns the distinct targets of the graph's nodes.
func (g *DependencyGraph) ComputationTargets() []ComputationTargetSpecification {
	seen := make(map[ComputationTargetSpecification]struct{}, len(g.nodes))
	targets := make([]ComputationTargetSpecification, 0, len(g.nodes))
	for _, n := range g.nodes {
		if _, ok := seen[n.Target.Spec]; ok {
			continue
		}
		seen[n.Target.Spec] = struct{}{}
		targets = append(targets, n.Target.Spec)
	}
	return targets
}

// RemoveUnnecessaryValues prunes every node and output that no terminal output
// depends on, transitively. Applying it more than once has no further effect.
func (g *DependencyGraph) RemoveUnnecessaryValues() {
	needed := make(map[ValueSpecification]struct{}, len(g.producers))
	visited := make(map[*DependencyNode]struct{}, len(g.nodes))
	var stack []*DependencyNode

	for spec := range g.terminals {
		needed[spec] = struct{}{}
		if n, ok := g.producers[spec]; ok {
			stack = append(stack, n)
		}
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}
		for _, in := range n.Inputs {
			needed[in] = struct{}{}
			if p, ok := g.producers[in]; ok {
				stack = append(stack, p)
			}
		}
	}

	kept := g.nodes[:0]
	for _, n := range g.nodes {
		n.Outputs = slices.DeleteFunc(n.Outputs, func(out ValueSpecification) bool {
			_, ok := needed[out]
			if !ok {
				delete(g.producers, out)
			}
			return !ok
		})
		if len(n.Outputs) > 0 {
			kept = append(kept, n)
		}
	}
	clear(g.nodes[len(kept):])
	g.nodes = kept
}

// Validate checks that every input has a producer and that the graph is acyclic.
func (g *DependencyGraph) Validate() error {
	_, err := g.ExecutionOrder()
	return err
}

// ExecutionOrder validates the graph and returns its nodes ordered so that
// every node follows the producers of its inputs. The graph is not modified.
func (g *DependencyGraph) ExecutionOrder() ([]*DependencyNode, error) {
	order := make([]*DependencyNode, 0, len(g.nodes))
	visited := make(map[*DependencyNode]int, len(g.nodes)) // 0: unvisited, 1: visiting, 2: visited
	var path []*DependencyNode

	var visit func(n *DependencyNode) error
	visit = func(n *DependencyNode) error {
		visited[n] = 1
		path = append(path, n)

		for _, in := range n.Inputs {
			dep, ok := g.producers[in]
			if !ok {
				return zerr.With(ErrMissingProducer, "value", in.String())
			}
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[n] = 2
		path = path[:len(path)-1]
		order = append(order, n)
		return nil
	}

	for _, n := range g.nodes {
		if visited[n] == 0 {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

func buildCycleError(path []*DependencyNode, dep *DependencyNode) error {
	start := slices.Index(path, dep)
	parts := make([]string, 0, len(path)-start+1)
	for _, n := range path[start:] {
		parts = append(parts, n.FunctionID+"("+n.Target.Spec.ID.String()+")")
	}
	parts = append(parts, dep.FunctionID+"("+dep.Target.Spec.ID.String()+")")
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}
