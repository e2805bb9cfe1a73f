// Package app implements the application layer for prism.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"go.trai.ch/prism/internal/adapters/functions" //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/adapters/livedata"  //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/adapters/source"    //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/engine/compilation"
	"go.trai.ch/prism/internal/engine/dispatch"
	"go.trai.ch/prism/internal/engine/statistics"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const viewProcessScheme = "ViewProcess"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	compiler     *compilation.Compiler
	builders     ports.DependencyGraphBuilderFactory
	node         ports.CalculationNode
	statistics   *statistics.PerViewProvider[*statistics.TotallingGatherer]
	discarding   *statistics.DiscardingGathererProvider

	workDir       string
	out           io.Writer
	disableOTel   bool
	viewProcesses atomic.Int64
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	compiler *compilation.Compiler,
	builders ports.DependencyGraphBuilderFactory,
	node ports.CalculationNode,
	stats *statistics.PerViewProvider[*statistics.TotallingGatherer],
	discarding *statistics.DiscardingGathererProvider,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		compiler:     compiler,
		builders:     builders,
		node:         node,
		statistics:   stats,
		discarding:   discarding,
		workDir:      ".",
		out:          os.Stdout,
	}
}

// WithWorkDir sets the directory the configuration is discovered from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithOutput sets where reports are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithDisableOTel keeps the global OpenTelemetry provider untouched.
// This is primarily used for testing.
func (a *App) WithDisableOTel() *App {
	a.disableOTel = true
	return a
}

// Compile compiles a view and reports the shape of its dependency graphs.
// An empty view name selects the only view of the workspace.
func (a *App) Compile(ctx context.Context, viewName string) error {
	shutdown := a.setupOTel()
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	_, view, model, err := a.compileView(ctx, viewName)
	if err != nil {
		return err
	}
	return renderCompilation(a.out, view, model)
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Cycles is the number of execution cycles, at least one.
	Cycles int
	// NoStatistics discards execution statistics regardless of the workspace settings.
	NoStatistics bool
}

// Run compiles a view and executes its graphs for the requested number of cycles.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, viewName string, opts RunOptions) error {
	shutdown := a.setupOTel()
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	// 1. Compile
	catalog, view, model, err := a.compileView(ctx, viewName)
	if err != nil {
		return err
	}

	// 2. Pick the statistics provider
	settings := catalog.Statistics
	gather := settings.Enabled && !opts.NoStatistics
	var provider ports.GraphExecutorStatisticsGathererProvider = a.discarding
	var maintainer *statistics.Maintainer
	if gather {
		provider = a.statistics
		maintainer, err = statistics.NewMaintainer(a.statistics, settings, a.logger)
		if err != nil {
			return err
		}
	}

	dispatcher := dispatch.NewDispatcher(a.node, provider, a.logger, settings)
	viewProcessID := domain.NewUniqueID(
		viewProcessScheme,
		view.Name(),
		strconv.FormatInt(a.viewProcesses.Add(1), 10),
	)
	cycles := max(opts.Cycles, 1)

	// 3. Run the maintainer alongside the execution cycles
	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	if maintainer != nil {
		g.Go(func() error {
			return maintainer.Run(runCtx)
		})
	}

	g.Go(func() error {
		defer stop()
		for cycle := 1; cycle <= cycles; cycle++ {
			executions, err := dispatcher.Execute(runCtx, viewProcessID, model)
			if err != nil {
				return zerr.With(err, "cycle", cycle)
			}
			if err := renderCycle(a.out, cycle, executions); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return errors.Join(domain.ErrViewExecutionFailed, err)
	}

	if !gather {
		return nil
	}
	return renderStatistics(a.out, viewProcessID, a.statistics.Gatherer(viewProcessID).ExecutionStatistics())
}

func (a *App) compileView(
	ctx context.Context,
	viewName string,
) (*domain.Catalog, *domain.ViewDefinition, *compilation.ViewEvaluationModel, error) {
	catalog, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	view, err := selectView(catalog, viewName)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := source.NewStore(catalog)
	if err != nil {
		return nil, nil, nil, err
	}

	services := &compilation.ViewCompilationServices{
		LiveDataAvailability: livedata.NewFixedAvailability(catalog.LiveData...),
		TargetResolver:       store,
		FunctionResolver:     functions.NewRepository(catalog.Functions),
		CompilationContext:   domain.NewFunctionCompilationContext(),
		SecuritySource:       store,
		PositionSource:       store,
		BuilderFactory:       a.builders,
	}

	model, err := a.compiler.Compile(ctx, view, services)
	if err != nil {
		return nil, nil, nil, err
	}
	return catalog, view, model, nil
}

func selectView(catalog *domain.Catalog, name string) (*domain.ViewDefinition, error) {
	if name != "" {
		return catalog.View(name)
	}
	if len(catalog.Views) == 1 {
		return catalog.Views[0], nil
	}
	return nil, zerr.With(domain.ErrNoViewSpecified, "views", catalog.ViewNames())
}

// setupOTel installs an SDK provider whose spans are reported to the logger.
func (a *App) setupOTel() func(context.Context) error {
	if a.disableOTel {
		return func(context.Context) error { return nil }
	}
	return telemetry.Setup(a.logger)
}
