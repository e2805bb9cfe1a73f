// Package compilation compiles view definitions into per-configuration
// dependency graphs.
package compilation

import (
	"maps"
	"slices"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/engine/resolution"
)

// ViewCompilationServices are the collaborators handed to every dependency
// graph builder of a compilation attempt.
type ViewCompilationServices struct {
	LiveDataAvailability ports.LiveDataAvailabilityProvider
	TargetResolver       ports.ComputationTargetResolver
	FunctionResolver     ports.FunctionResolver
	CompilationContext   *domain.FunctionCompilationContext
	SecuritySource       ports.SecuritySource
	PositionSource       ports.PositionSource
	BuilderFactory       ports.DependencyGraphBuilderFactory
}

// ViewCompilationContext holds the state of one compilation attempt: one
// configured builder per calculation configuration of the view.
// The set of builders is fixed at construction.
type ViewCompilationContext struct {
	view     *domain.ViewDefinition
	services *ViewCompilationServices
	recorder *resolution.Recorder
	names    []string
	builders map[string]ports.DependencyGraphBuilder
}

// NewViewCompilationContext creates a builder for each calculation
// configuration of view and configures it from services.
func NewViewCompilationContext(
	view *domain.ViewDefinition,
	services *ViewCompilationServices,
	recorder *resolution.Recorder,
) *ViewCompilationContext {
	names := view.CalculationConfigurationNames()
	builders := make(map[string]ports.DependencyGraphBuilder, len(names))
	for _, name := range names {
		b := services.BuilderFactory.NewBuilder()
		b.SetCalculationConfigurationName(name)
		b.SetLiveDataAvailabilityProvider(services.LiveDataAvailability)
		b.SetTargetResolver(services.TargetResolver)
		b.SetFunctionResolver(services.FunctionResolver)
		b.SetCompilationContext(services.CompilationContext)
		builders[name] = b
	}
	return &ViewCompilationContext{
		view:     view,
		services: services,
		recorder: recorder,
		names:    names,
		builders: builders,
	}
}

// ViewDefinition returns the view being compiled.
func (c *ViewCompilationContext) ViewDefinition() *domain.ViewDefinition { return c.view }

// Services returns the services the builders were configured with.
func (c *ViewCompilationContext) Services() *ViewCompilationServices { return c.services }

// ResolutionRecorder returns the recorder collecting resolutions of this attempt.
func (c *ViewCompilationContext) ResolutionRecorder() *resolution.Recorder { return c.recorder }

// Builders returns a copy of the builders keyed by calculation configuration name.
func (c *ViewCompilationContext) Builders() map[string]ports.DependencyGraphBuilder {
	return maps.Clone(c.builders)
}

// BuilderNames returns the calculation configuration names in view order.
func (c *ViewCompilationContext) BuilderNames() []string {
	return slices.Clone(c.names)
}

// Builder returns the builder of one calculation configuration.
func (c *ViewCompilationContext) Builder(name string) (ports.DependencyGraphBuilder, bool) {
	b, ok := c.builders[name]
	return b, ok
}
