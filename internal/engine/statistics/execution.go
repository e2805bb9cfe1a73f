// Package statistics collects graph execution statistics per view process and
// calculation configuration.
package statistics

import (
	"math"
	"sync/atomic"
	"time"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/zerr"
)

// GraphExecutionStatistics accumulates processing and execution outcomes of
// the graphs of one calculation configuration of one view process.
//
// Every counter is updated atomically on its own. Composite operations such as
// Decay, Snapshot and Delta read counters one at a time, so a concurrent reader
// may observe a graph count that already includes an execution whose time has
// not been added yet.
type GraphExecutionStatistics struct {
	viewProcessID domain.UniqueID
	calcConfig    string

	processedGraphs       atomic.Int64
	executedGraphs        atomic.Int64
	executedNodes         atomic.Int64
	executionTime         atomic.Int64
	actualTime            atomic.Int64
	processedJobs         atomic.Int64
	processedJobSize      atomic.Int64
	processedJobCycleCost atomic.Int64
	processedJobDataCost  atomic.Int64

	lastProcessed atomic.Int64
	lastExecuted  atomic.Int64
}

// NewGraphExecutionStatistics creates zeroed statistics.
func NewGraphExecutionStatistics(viewProcessID domain.UniqueID, calcConfig string) *GraphExecutionStatistics {
	return &GraphExecutionStatistics{
		viewProcessID: viewProcessID,
		calcConfig:    calcConfig,
	}
}

// ViewProcessID returns the owning view process.
func (s *GraphExecutionStatistics) ViewProcessID() domain.UniqueID { return s.viewProcessID }

// CalculationConfiguration returns the owning calculation configuration name.
func (s *GraphExecutionStatistics) CalculationConfiguration() string { return s.calcConfig }

// RecordExecution records one completed graph execution.
func (s *GraphExecutionStatistics) RecordExecution(nodeCount int, executionTime, duration time.Duration) {
	s.executedGraphs.Add(1)
	s.executedNodes.Add(int64(nodeCount))
	s.executionTime.Add(int64(executionTime))
	s.actualTime.Add(int64(duration))
	s.lastExecuted.Store(time.Now().UnixNano())
}

// RecordProcessing records that one graph was partitioned into jobs.
// A NaN cost mean is replaced by the running average of that cost.
func (s *GraphExecutionStatistics) RecordProcessing(totalJobs int, meanJobSize, meanJobCycleCost, meanJobIOCost float64) {
	if math.IsNaN(meanJobCycleCost) {
		meanJobCycleCost = s.AverageJobCycleCost()
	}
	if math.IsNaN(meanJobIOCost) {
		meanJobIOCost = s.AverageJobIOCost()
	}
	s.processedGraphs.Add(1)
	s.processedJobs.Add(int64(totalJobs))
	s.processedJobSize.Add(roundToInt64(meanJobSize))
	s.processedJobCycleCost.Add(roundToInt64(meanJobCycleCost))
	s.processedJobDataCost.Add(roundToInt64(meanJobIOCost))
	s.lastProcessed.Store(time.Now().UnixNano())
}

func roundToInt64(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	return int64(math.Round(v))
}

func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// ProcessedGraphs returns the number of graphs partitioned into jobs.
func (s *GraphExecutionStatistics) ProcessedGraphs() int64 { return s.processedGraphs.Load() }

// ExecutedGraphs returns the number of completed graph executions.
func (s *GraphExecutionStatistics) ExecutedGraphs() int64 { return s.executedGraphs.Load() }

// ExecutedNodes returns the total number of executed nodes.
func (s *GraphExecutionStatistics) ExecutedNodes() int64 { return s.executedNodes.Load() }

// ExecutionTime returns the summed job execution time.
func (s *GraphExecutionStatistics) ExecutionTime() time.Duration {
	return time.Duration(s.executionTime.Load())
}

// ActualTime returns the summed wall time of graph executions.
func (s *GraphExecutionStatistics) ActualTime() time.Duration {
	return time.Duration(s.actualTime.Load())
}

// ProcessedJobs returns the total number of jobs produced.
func (s *GraphExecutionStatistics) ProcessedJobs() int64 { return s.processedJobs.Load() }

// AverageGraphSize returns the mean number of nodes per executed graph.
func (s *GraphExecutionStatistics) AverageGraphSize() float64 {
	return ratio(s.executedNodes.Load(), s.executedGraphs.Load())
}

// AverageExecutionTime returns the mean summed job time per executed graph.
func (s *GraphExecutionStatistics) AverageExecutionTime() time.Duration {
	return time.Duration(ratio(s.executionTime.Load(), s.executedGraphs.Load()))
}

// AverageActualTime returns the mean wall time per executed graph.
func (s *GraphExecutionStatistics) AverageActualTime() time.Duration {
	return time.Duration(ratio(s.actualTime.Load(), s.executedGraphs.Load()))
}

// AverageJobCount returns the mean number of jobs per processed graph.
func (s *GraphExecutionStatistics) AverageJobCount() float64 {
	return ratio(s.processedJobs.Load(), s.processedGraphs.Load())
}

// AverageJobSize returns the mean of the reported mean job sizes.
func (s *GraphExecutionStatistics) AverageJobSize() float64 {
	return ratio(s.processedJobSize.Load(), s.processedGraphs.Load())
}

// AverageJobCycleCost returns the mean of the reported mean job cycle costs.
func (s *GraphExecutionStatistics) AverageJobCycleCost() float64 {
	return ratio(s.processedJobCycleCost.Load(), s.processedGraphs.Load())
}

// AverageJobIOCost returns the mean of the reported mean job IO costs.
func (s *GraphExecutionStatistics) AverageJobIOCost() float64 {
	return ratio(s.processedJobDataCost.Load(), s.processedGraphs.Load())
}

// LastProcessed returns when a graph was last processed, zero if never.
func (s *GraphExecutionStatistics) LastProcessed() time.Time {
	return unixNanoTime(s.lastProcessed.Load())
}

// LastExecuted returns when a graph was last executed, zero if never.
func (s *GraphExecutionStatistics) LastExecuted() time.Time {
	return unixNanoTime(s.lastExecuted.Load())
}

// LastActivity returns the later of LastProcessed and LastExecuted.
func (s *GraphExecutionStatistics) LastActivity() time.Time {
	return unixNanoTime(max(s.lastProcessed.Load(), s.lastExecuted.Load()))
}

func unixNanoTime(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

func (s *GraphExecutionStatistics) counters() []*atomic.Int64 {
	return []*atomic.Int64{
		&s.processedGraphs,
		&s.executedGraphs,
		&s.executedNodes,
		&s.executionTime,
		&s.actualTime,
		&s.processedJobs,
		&s.processedJobSize,
		&s.processedJobCycleCost,
		&s.processedJobDataCost,
	}
}

// Reset zeroes every counter in place. Timestamps are kept.
func (s *GraphExecutionStatistics) Reset() {
	for _, c := range s.counters() {
		c.Store(0)
	}
}

// Decay scales every counter by (1 - factor), rounding to the nearest integer.
// Decay(0) leaves the counters unchanged and Decay(1) zeroes them.
func (s *GraphExecutionStatistics) Decay(factor float64) error {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		return zerr.With(domain.ErrInvalidDecayFactor, "factor", factor)
	}
	keep := 1 - factor
	for _, c := range s.counters() {
		for {
			old := c.Load()
			if c.CompareAndSwap(old, int64(math.Round(float64(old)*keep))) {
				break
			}
		}
	}
	return nil
}

// Snapshot returns a detached copy of the statistics.
func (s *GraphExecutionStatistics) Snapshot() *GraphExecutionStatistics {
	cp := &GraphExecutionStatistics{
		viewProcessID: s.viewProcessID,
		calcConfig:    s.calcConfig,
	}
	dst := cp.counters()
	for i, c := range s.counters() {
		dst[i].Store(c.Load())
	}
	cp.lastProcessed.Store(s.lastProcessed.Load())
	cp.lastExecuted.Store(s.lastExecuted.Load())
	return cp
}

// Delta replaces every counter of s with future's value minus s's value, and
// takes future's timestamps. It is meant for two snapshots of the same source.
func (s *GraphExecutionStatistics) Delta(future *GraphExecutionStatistics) {
	src := future.counters()
	for i, c := range s.counters() {
		c.Store(src[i].Load() - c.Load())
	}
	s.lastProcessed.Store(future.lastProcessed.Load())
	s.lastExecuted.Store(future.lastExecuted.Load())
}
