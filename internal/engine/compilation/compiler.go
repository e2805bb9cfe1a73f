package compilation

import (
	"context"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/engine/resolution"
	"go.trai.ch/zerr"
)

// Compiler compiles view definitions. It holds no per-attempt state, so one
// Compiler may run any number of attempts concurrently.
type Compiler struct {
	logger       ports.Logger
	tracer       ports.Tracer
	portfolios   PortfolioCompiler
	requirements RequirementsCompiler
}

// NewCompiler creates a Compiler delegating to the position portfolio
// compiler and the specific requirements compiler.
func NewCompiler(logger ports.Logger, tracer ports.Tracer) *Compiler {
	return &Compiler{
		logger:       logger,
		tracer:       tracer,
		portfolios:   PositionPortfolioCompiler{},
		requirements: SpecificRequirementsCompiler{},
	}
}

// WithPortfolioCompiler replaces the collaborator compiling the view's portfolio.
func (c *Compiler) WithPortfolioCompiler(pc PortfolioCompiler) *Compiler {
	c.portfolios = pc
	return c
}

// WithRequirementsCompiler replaces the collaborator adding specific requirements.
func (c *Compiler) WithRequirementsCompiler(rc RequirementsCompiler) *Compiler {
	c.requirements = rc
	return c
}

// Compile builds, prunes and validates the dependency graph of every
// calculation configuration of view. Any failure aborts the attempt.
func (c *Compiler) Compile(
	ctx context.Context,
	view *domain.ViewDefinition,
	services *ViewCompilationServices,
) (*ViewEvaluationModel, error) {
	if view == nil {
		return nil, zerr.With(domain.ErrNilArgument, "argument", "view")
	}
	if services == nil {
		return nil, zerr.With(domain.ErrNilArgument, "argument", "services")
	}

	ctx, span := c.tracer.Start(ctx, "compile", ports.WithAttribute("view", view.Name()))
	defer span.End()

	model, err := c.compile(ctx, view, services)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCompilationFailed.Error()), "view", view.Name())
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("calc_configs", len(model.names))
	return model, nil
}

func (c *Compiler) compile(
	ctx context.Context,
	view *domain.ViewDefinition,
	services *ViewCompilationServices,
) (*ViewEvaluationModel, error) {
	vcc := NewViewCompilationContext(view, services, resolution.NewRecorder(c.logger))

	portfolio, err := c.portfolios.Compile(ctx, vcc)
	if err != nil {
		return nil, err
	}
	if err := c.requirements.Compile(ctx, vcc); err != nil {
		return nil, err
	}

	builders := vcc.Builders()
	graphs := make(map[string]*domain.DependencyGraph, len(builders))
	for _, name := range vcc.BuilderNames() {
		g, err := builders[name].DependencyGraph(ctx)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrGraphBuildFailed.Error()), "calc_config", name)
		}
		g.RemoveUnnecessaryValues()
		graphs[name] = g
		c.logger.Debug("compiled dependency graph",
			"view", view.Name(),
			"calc_config", name,
			"nodes", g.NodeCount(),
			"live_data", len(g.AllRequiredLiveData()),
		)
	}

	pruneResolutions(vcc.ResolutionRecorder(), graphs)
	return NewViewEvaluationModel(graphs, portfolio, vcc.ResolutionRecorder().Resolutions())
}

// pruneResolutions drops resolutions of targets no graph computes on.
// Position resolutions are always kept.
func pruneResolutions(recorder *resolution.Recorder, graphs map[string]*domain.DependencyGraph) {
	used := make(map[domain.ObjectID]struct{})
	for _, g := range graphs {
		for _, t := range g.ComputationTargets() {
			used[t.ID.ObjectID()] = struct{}{}
		}
	}
	recorder.Retain(func(r resolution.Resolution) bool {
		if r.Reference.TargetType() == domain.TargetPosition {
			return true
		}
		_, ok := used[r.Resolved.ObjectID()]
		return ok
	})
}
