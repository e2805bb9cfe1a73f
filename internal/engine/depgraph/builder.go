// Package depgraph builds dependency graphs by resolving each requested value
// to a function or to market data, recursively through function inputs.
package depgraph

import (
	"context"
	"sync"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/zerr"
)

type resolutionKey struct {
	valueName string
	target    domain.ComputationTargetSpecification
}

// Builder is the default ports.DependencyGraphBuilder. Resolution happens
// synchronously inside AddTarget, so DependencyGraph never waits.
type Builder struct {
	calcConfig  string
	liveData    ports.LiveDataAvailabilityProvider
	targets     ports.ComputationTargetResolver
	functions   ports.FunctionResolver
	compilation *domain.FunctionCompilationContext

	mu       sync.Mutex
	graph    *domain.DependencyGraph
	resolved map[resolutionKey]domain.ValueSpecification
	visiting map[resolutionKey]struct{}
}

var _ ports.DependencyGraphBuilder = (*Builder)(nil)

// NewBuilder creates an unconfigured builder.
func NewBuilder() *Builder {
	return &Builder{
		resolved: make(map[resolutionKey]domain.ValueSpecification),
		visiting: make(map[resolutionKey]struct{}),
	}
}

// SetCalculationConfigurationName implements ports.DependencyGraphBuilder.
func (b *Builder) SetCalculationConfigurationName(name string) { b.calcConfig = name }

// SetLiveDataAvailabilityProvider implements ports.DependencyGraphBuilder.
func (b *Builder) SetLiveDataAvailabilityProvider(provider ports.LiveDataAvailabilityProvider) {
	b.liveData = provider
}

// SetTargetResolver implements ports.DependencyGraphBuilder.
func (b *Builder) SetTargetResolver(resolver ports.ComputationTargetResolver) { b.targets = resolver }

// SetFunctionResolver implements ports.DependencyGraphBuilder.
func (b *Builder) SetFunctionResolver(resolver ports.FunctionResolver) { b.functions = resolver }

// SetCompilationContext implements ports.DependencyGraphBuilder.
func (b *Builder) SetCompilationContext(ctx *domain.FunctionCompilationContext) { b.compilation = ctx }

// CalculationConfigurationName implements ports.DependencyGraphBuilder.
func (b *Builder) CalculationConfigurationName() string { return b.calcConfig }

// CompilationContext implements ports.DependencyGraphBuilder.
func (b *Builder) CompilationContext() *domain.FunctionCompilationContext { return b.compilation }

func (b *Builder) graphLocked() *domain.DependencyGraph {
	if b.graph == nil {
		b.graph = domain.NewDependencyGraph(b.calcConfig)
	}
	return b.graph
}

// AddTarget resolves req and marks the value satisfying it as a terminal output.
func (b *Builder) AddTarget(ctx context.Context, req domain.ValueRequirement) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	spec, err := b.targetSpecification(ctx, req.Target)
	if err != nil {
		return zerr.With(err, "requirement", req.String())
	}
	target, err := b.resolveTarget(ctx, spec)
	if err != nil {
		return zerr.With(err, "requirement", req.String())
	}
	value, err := b.resolveValue(req.ValueName, target)
	if err != nil {
		return err
	}
	return b.graphLocked().AddTerminalOutput(value, req)
}

func (b *Builder) targetSpecification(
	ctx context.Context,
	ref domain.ComputationTargetReference,
) (domain.ComputationTargetSpecification, error) {
	switch r := ref.(type) {
	case domain.ComputationTargetSpecification:
		return r, nil
	case domain.ComputationTargetRequirement:
		return b.targets.ResolveRequirement(ctx, r)
	default:
		return domain.ComputationTargetSpecification{}, zerr.With(domain.ErrNilArgument, "argument", "target")
	}
}

func (b *Builder) resolveTarget(
	ctx context.Context,
	spec domain.ComputationTargetSpecification,
) (domain.ComputationTarget, error) {
	if b.compilation != nil {
		if target, ok := b.compilation.PortfolioTarget(spec); ok {
			return target, nil
		}
	}
	return b.targets.Resolve(ctx, spec)
}

func (b *Builder) resolveValue(valueName string, target domain.ComputationTarget) (domain.ValueSpecification, error) {
	key := resolutionKey{valueName: valueName, target: target.Spec}
	if spec, ok := b.resolved[key]; ok {
		return spec, nil
	}
	if _, ok := b.visiting[key]; ok {
		err := zerr.With(domain.ErrResolutionCycle, "value", valueName)
		return domain.ValueSpecification{}, zerr.With(err, "target", target.Spec.String())
	}

	var node *domain.DependencyNode
	if b.liveData != nil && b.liveData.IsAvailable(valueName, target.Spec) {
		node = &domain.DependencyNode{
			FunctionID: domain.LiveDataFunctionID,
			Target:     target,
			LiveData:   true,
		}
	} else {
		fn, ok := b.functions.Resolve(valueName, target)
		if !ok {
			err := zerr.With(domain.ErrUnsatisfiedRequirement, "value", valueName)
			return domain.ValueSpecification{}, zerr.With(err, "target", target.Spec.String())
		}

		b.visiting[key] = struct{}{}
		inputs, err := b.resolveInputs(fn, target)
		delete(b.visiting, key)
		if err != nil {
			return domain.ValueSpecification{}, err
		}
		node = &domain.DependencyNode{
			FunctionID: fn.ID,
			Target:     target,
			Inputs:     inputs,
		}
	}

	spec := domain.ValueSpecification{ValueName: valueName, Target: target.Spec, FunctionID: node.FunctionID}
	node.Outputs = []domain.ValueSpecification{spec}
	if err := b.graphLocked().AddNode(node); err != nil {
		return domain.ValueSpecification{}, err
	}
	b.resolved[key] = spec
	return spec, nil
}

func (b *Builder) resolveInputs(fn domain.FunctionDefinition, target domain.ComputationTarget) ([]domain.ValueSpecification, error) {
	inputs := make([]domain.ValueSpecification, 0, len(fn.Inputs))
	for _, in := range fn.Inputs {
		inTarget := target
		if in.OnSecurity {
			sec, err := securityOf(target)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to resolve security input"), "function", fn.ID)
			}
			inTarget = domain.ComputationTarget{
				Spec:  domain.NewComputationTargetSpecification(domain.TargetSecurity, sec.UniqueID()),
				Value: sec,
			}
		}
		spec, err := b.resolveValue(in.ValueName, inTarget)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, spec)
	}
	return inputs, nil
}

func securityOf(target domain.ComputationTarget) (domain.Security, error) {
	if sec := target.Security(); sec != nil {
		return sec, nil
	}
	pt, ok := target.PositionOrTrade()
	if !ok {
		return nil, zerr.With(domain.ErrSecurityNotResolved, "target", target.Spec.String())
	}
	return pt.Security()
}

// DependencyGraph returns the graph built so far.
func (b *Builder) DependencyGraph(ctx context.Context) (*domain.DependencyGraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.graphLocked(), nil
}

// Factory creates Builders.
type Factory struct{}

var _ ports.DependencyGraphBuilderFactory = Factory{}

// NewBuilder implements ports.DependencyGraphBuilderFactory.
func (Factory) NewBuilder() ports.DependencyGraphBuilder {
	return NewBuilder()
}
