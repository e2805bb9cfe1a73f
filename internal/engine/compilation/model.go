package compilation

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/engine/resolution"
	"go.trai.ch/zerr"
)

// ViewEvaluationModel is the immutable result of compiling a view. It may be
// shared across goroutines.
type ViewEvaluationModel struct {
	portfolio     domain.Portfolio
	graphs        map[string]*CompiledGraph
	names         []string
	liveData      []domain.ValueSpecification
	securityTypes []string
	resolutions   []resolution.Resolution
}

// NewViewEvaluationModel validates the per-configuration graphs and assembles
// a model from them. portfolio may be nil for views without one. The graphs
// must not be modified afterwards.
func NewViewEvaluationModel(
	graphs map[string]*domain.DependencyGraph,
	portfolio domain.Portfolio,
	resolutions []resolution.Resolution,
) (*ViewEvaluationModel, error) {
	if graphs == nil {
		return nil, zerr.With(domain.ErrNilArgument, "argument", "graphs")
	}

	names := slices.Sorted(maps.Keys(graphs))
	compiled := make(map[string]*CompiledGraph, len(graphs))
	for _, name := range names {
		g, err := newCompiledGraph(graphs[name])
		if err != nil {
			return nil, err
		}
		compiled[name] = g
	}

	liveData := make(map[domain.ValueSpecification]struct{})
	securityTypes := make(map[string]struct{})
	for _, name := range names {
		g := compiled[name]
		for _, spec := range g.AllRequiredLiveData() {
			liveData[spec] = struct{}{}
		}
		for n := range g.Nodes() {
			if n.Target.Type() != domain.TargetSecurity {
				continue
			}
			if sec := n.Target.Security(); sec != nil {
				securityTypes[sec.SecurityType()] = struct{}{}
			}
		}
	}

	return &ViewEvaluationModel{
		portfolio: portfolio,
		graphs:    compiled,
		names:     names,
		liveData: slices.SortedFunc(maps.Keys(liveData), func(a, b domain.ValueSpecification) int {
			return strings.Compare(a.String(), b.String())
		}),
		securityTypes: slices.Sorted(maps.Keys(securityTypes)),
		resolutions:   slices.Clone(resolutions),
	}, nil
}

// Portfolio returns the compiled portfolio, nil if the view has none.
func (m *ViewEvaluationModel) Portfolio() domain.Portfolio { return m.portfolio }

// CalculationConfigurationNames returns the configuration names, sorted.
func (m *ViewEvaluationModel) CalculationConfigurationNames() []string {
	return slices.Clone(m.names)
}

// DependencyGraph returns the graph of one calculation configuration.
func (m *ViewEvaluationModel) DependencyGraph(calcConfig string) (*CompiledGraph, bool) {
	g, ok := m.graphs[calcConfig]
	return g, ok
}

// DependencyGraphs returns a copy of the graphs keyed by configuration name.
func (m *ViewEvaluationModel) DependencyGraphs() map[string]*CompiledGraph {
	return maps.Clone(m.graphs)
}

// AllLiveDataRequirements returns the market data values required by any graph.
func (m *ViewEvaluationModel) AllLiveDataRequirements() []domain.ValueSpecification {
	return slices.Clone(m.liveData)
}

// AllSecurityTypes returns the distinct types of securities computed on, sorted.
func (m *ViewEvaluationModel) AllSecurityTypes() []string {
	return slices.Clone(m.securityTypes)
}

// AllComputationTargets returns every target computed on by any graph.
func (m *ViewEvaluationModel) AllComputationTargets() []domain.ComputationTargetSpecification {
	seen := make(map[domain.ComputationTargetSpecification]struct{})
	for _, name := range m.names {
		for _, t := range m.graphs[name].ComputationTargets() {
			seen[t] = struct{}{}
		}
	}
	return slices.SortedFunc(maps.Keys(seen), func(a, b domain.ComputationTargetSpecification) int {
		return cmp.Compare(a.String(), b.String())
	})
}

// AllOutputValueNames returns the distinct names of values produced by any graph, sorted.
func (m *ViewEvaluationModel) AllOutputValueNames() []string {
	seen := make(map[string]struct{})
	for _, name := range m.names {
		for _, spec := range m.graphs[name].OutputSpecifications() {
			seen[spec.ValueName] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Resolutions returns the target resolutions the graphs depend on.
func (m *ViewEvaluationModel) Resolutions() []resolution.Resolution {
	return slices.Clone(m.resolutions)
}
