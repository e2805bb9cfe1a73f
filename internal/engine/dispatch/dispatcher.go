// Package dispatch partitions compiled dependency graphs into calculation jobs
// and runs them, reporting outcomes to the view's statistics gatherer.
package dispatch

import (
	"context"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/engine/compilation"
	"go.trai.ch/prism/internal/engine/statistics"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// statisticsReader is implemented by gatherers that expose what they recorded.
type statisticsReader interface {
	Statistics(calcConfig string) (*statistics.GraphExecutionStatistics, bool)
}

// GraphExecution summarizes one executed graph.
type GraphExecution struct {
	CalcConfig    string
	Nodes         int
	Jobs          int
	ExecutionTime time.Duration
	Duration      time.Duration
}

// Dispatcher runs the graphs of a compiled view on a calculation node.
type Dispatcher struct {
	node           ports.CalculationNode
	provider       ports.GraphExecutorStatisticsGathererProvider
	logger         ports.Logger
	defaultJobSize int
	parallelism    int
}

// NewDispatcher creates a Dispatcher. Job sizing and parallelism come from settings.
func NewDispatcher(
	node ports.CalculationNode,
	provider ports.GraphExecutorStatisticsGathererProvider,
	logger ports.Logger,
	settings domain.StatisticsSettings,
) *Dispatcher {
	return &Dispatcher{
		node:           node,
		provider:       provider,
		logger:         logger,
		defaultJobSize: max(settings.DefaultJobSize, 1),
		parallelism:    max(settings.Parallelism, 1),
	}
}

// Execute runs one cycle: every graph of model, in calculation configuration order.
// The model is only read, so several cycles may share it concurrently.
func (d *Dispatcher) Execute(
	ctx context.Context,
	viewProcessID domain.UniqueID,
	model *compilation.ViewEvaluationModel,
) ([]GraphExecution, error) {
	gatherer := d.provider.StatisticsGatherer(viewProcessID)
	results := make([]GraphExecution, 0, len(model.CalculationConfigurationNames()))

	for _, name := range model.CalculationConfigurationNames() {
		g, _ := model.DependencyGraph(name)
		res, err := d.executeGraph(ctx, viewProcessID, gatherer, g)
		if err != nil {
			return nil, zerr.With(err, "calc_config", name)
		}
		results = append(results, res)
	}
	return results, nil
}

func (d *Dispatcher) executeGraph(
	ctx context.Context,
	viewProcessID domain.UniqueID,
	gatherer ports.GraphExecutorStatisticsGatherer,
	g *compilation.CompiledGraph,
) (GraphExecution, error) {
	name := g.CalculationConfigurationName()
	size := d.jobSize(gatherer, name)
	jobs := partition(viewProcessID, name, levels(g), size)
	nodeCount := g.NodeCount()

	meanJobSize := 0.0
	if len(jobs) > 0 {
		meanJobSize = float64(nodeCount) / float64(len(jobs))
	}
	gatherer.GraphProcessed(name, len(jobs), meanJobSize, math.NaN(), math.NaN())

	d.logger.Debug("dispatching graph",
		"view_process", viewProcessID.String(),
		"calc_config", name,
		"nodes", nodeCount,
		"jobs", len(jobs),
		"job_size", size,
	)

	var execTime atomic.Int64
	start := time.Now()
	for _, level := range jobs.byLevel() {
		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(d.parallelism)
		for _, job := range level {
			eg.Go(func() error {
				jobStart := time.Now()
				err := d.node.Execute(egCtx, job)
				execTime.Add(int64(time.Since(jobStart)))
				if err != nil {
					return zerr.With(zerr.Wrap(err, domain.ErrJobExecutionFailed.Error()), "job", job.Index)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return GraphExecution{}, err
		}
	}
	duration := time.Since(start)

	gatherer.GraphExecuted(name, nodeCount, time.Duration(execTime.Load()), duration)

	return GraphExecution{
		CalcConfig:    name,
		Nodes:         nodeCount,
		Jobs:          len(jobs),
		ExecutionTime: time.Duration(execTime.Load()),
		Duration:      duration,
	}, nil
}

// jobSize spreads an average graph of earlier cycles over the available
// parallelism, falling back to the default size without history.
func (d *Dispatcher) jobSize(gatherer ports.GraphExecutorStatisticsGatherer, calcConfig string) int {
	reader, ok := gatherer.(statisticsReader)
	if !ok {
		return d.defaultJobSize
	}
	stats, ok := reader.Statistics(calcConfig)
	if !ok || stats.AverageGraphSize() == 0 {
		return d.defaultJobSize
	}
	return max(int(math.Ceil(stats.AverageGraphSize()/float64(d.parallelism))), 1)
}

// levels groups the nodes of a compiled graph so that every node's
// producers sit in earlier levels.
func levels(g *compilation.CompiledGraph) [][]*domain.DependencyNode {
	depth := make(map[*domain.DependencyNode]int, g.NodeCount())
	var out [][]*domain.DependencyNode
	for n := range g.Walk() {
		level := 0
		for _, in := range n.Inputs {
			if p, ok := g.Producer(in); ok {
				level = max(level, depth[p]+1)
			}
		}
		depth[n] = level
		if level == len(out) {
			out = append(out, nil)
		}
		out[level] = append(out[level], n)
	}
	return out
}

type jobSet []ports.CalculationJob

func (s jobSet) byLevel() [][]ports.CalculationJob {
	var out [][]ports.CalculationJob
	for _, job := range s {
		level := job.Level
		for len(out) <= level {
			out = append(out, nil)
		}
		out[level] = append(out[level], job)
	}
	return out
}

func partition(
	viewProcessID domain.UniqueID,
	calcConfig string,
	leveled [][]*domain.DependencyNode,
	size int,
) jobSet {
	var jobs jobSet
	for level, nodes := range leveled {
		for chunk := range slices.Chunk(nodes, size) {
			jobs = append(jobs, ports.CalculationJob{
				ViewProcessID: viewProcessID,
				CalcConfig:    calcConfig,
				Index:         len(jobs),
				Level:         level,
				Nodes:         chunk,
			})
		}
	}
	return jobs
}
