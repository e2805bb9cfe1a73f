// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/prism/internal/core/domain"
)

//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks

// DependencyGraphBuilder builds the dependency graph of one calculation configuration.
// Each setter is called once, before any target is added.
type DependencyGraphBuilder interface {
	SetCalculationConfigurationName(name string)
	SetLiveDataAvailabilityProvider(provider LiveDataAvailabilityProvider)
	SetTargetResolver(resolver ComputationTargetResolver)
	SetFunctionResolver(resolver FunctionResolver)
	SetCompilationContext(ctx *domain.FunctionCompilationContext)

	// CalculationConfigurationName returns the configured name.
	CalculationConfigurationName() string
	// CompilationContext returns the configured compilation context.
	CompilationContext() *domain.FunctionCompilationContext

	// AddTarget requests a terminal output of the graph.
	AddTarget(ctx context.Context, req domain.ValueRequirement) error
	// DependencyGraph blocks until the graph is complete and returns it.
	DependencyGraph(ctx context.Context) (*domain.DependencyGraph, error)
}

// DependencyGraphBuilderFactory creates unconfigured builders.
type DependencyGraphBuilderFactory interface {
	NewBuilder() DependencyGraphBuilder
}
