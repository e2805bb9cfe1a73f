package statistics

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
)

// TotallingGatherer keeps one GraphExecutionStatistics per calculation
// configuration of a view process, created on the first report.
type TotallingGatherer struct {
	viewProcessID domain.UniqueID
	byConfig      sync.Map // string -> *GraphExecutionStatistics
}

var _ ports.GraphExecutorStatisticsGatherer = (*TotallingGatherer)(nil)

// NewTotallingGatherer creates a gatherer for a view process.
func NewTotallingGatherer(viewProcessID domain.UniqueID) *TotallingGatherer {
	return &TotallingGatherer{viewProcessID: viewProcessID}
}

// ViewProcessID returns the view process the gatherer reports for.
func (g *TotallingGatherer) ViewProcessID() domain.UniqueID {
	return g.viewProcessID
}

func (g *TotallingGatherer) statistics(calcConfig string) *GraphExecutionStatistics {
	if s, ok := g.byConfig.Load(calcConfig); ok {
		return s.(*GraphExecutionStatistics)
	}
	s, _ := g.byConfig.LoadOrStore(calcConfig, NewGraphExecutionStatistics(g.viewProcessID, calcConfig))
	return s.(*GraphExecutionStatistics)
}

// GraphProcessed implements ports.GraphExecutorStatisticsGatherer.
func (g *TotallingGatherer) GraphProcessed(calcConfig string, totalJobs int, meanJobSize, meanJobCycleCost, meanJobIOCost float64) {
	g.statistics(calcConfig).RecordProcessing(totalJobs, meanJobSize, meanJobCycleCost, meanJobIOCost)
}

// GraphExecuted implements ports.GraphExecutorStatisticsGatherer.
func (g *TotallingGatherer) GraphExecuted(calcConfig string, nodeCount int, executionTime, duration time.Duration) {
	g.statistics(calcConfig).RecordExecution(nodeCount, executionTime, duration)
}

// Statistics returns the live statistics of one calculation configuration.
func (g *TotallingGatherer) Statistics(calcConfig string) (*GraphExecutionStatistics, bool) {
	s, ok := g.byConfig.Load(calcConfig)
	if !ok {
		return nil, false
	}
	return s.(*GraphExecutionStatistics), true
}

// ExecutionStatistics returns the live statistics of every calculation
// configuration, ordered by configuration name.
func (g *TotallingGatherer) ExecutionStatistics() []*GraphExecutionStatistics {
	var out []*GraphExecutionStatistics
	g.byConfig.Range(func(_, v any) bool {
		out = append(out, v.(*GraphExecutionStatistics))
		return true
	})
	slices.SortFunc(out, func(a, b *GraphExecutionStatistics) int {
		return cmp.Compare(a.calcConfig, b.calcConfig)
	})
	return out
}

// Decay decays the statistics of every calculation configuration.
func (g *TotallingGatherer) Decay(factor float64) error {
	for _, s := range g.ExecutionStatistics() {
		if err := s.Decay(factor); err != nil {
			return err
		}
	}
	return nil
}

// LastActivity returns the latest activity across all calculation configurations.
func (g *TotallingGatherer) LastActivity() time.Time {
	var last time.Time
	for _, s := range g.ExecutionStatistics() {
		if t := s.LastActivity(); t.After(last) {
			last = t
		}
	}
	return last
}

// DropStatisticsBefore removes configurations idle since before cutoff and
// reports whether none remain.
func (g *TotallingGatherer) DropStatisticsBefore(cutoff time.Time) bool {
	empty := true
	g.byConfig.Range(func(k, v any) bool {
		if v.(*GraphExecutionStatistics).LastActivity().Before(cutoff) {
			g.byConfig.Delete(k)
		} else {
			empty = false
		}
		return true
	})
	return empty
}

// DiscardingGatherer ignores every report.
type DiscardingGatherer struct{}

var _ ports.GraphExecutorStatisticsGatherer = DiscardingGatherer{}

// GraphProcessed implements ports.GraphExecutorStatisticsGatherer.
func (DiscardingGatherer) GraphProcessed(string, int, float64, float64, float64) {}

// GraphExecuted implements ports.GraphExecutorStatisticsGatherer.
func (DiscardingGatherer) GraphExecuted(string, int, time.Duration, time.Duration) {}

// DiscardingGathererProvider hands the same discarding gatherer to every view.
// It is used when statistics are disabled.
type DiscardingGathererProvider struct {
	gatherer ports.GraphExecutorStatisticsGatherer
}

var _ ports.GraphExecutorStatisticsGathererProvider = (*DiscardingGathererProvider)(nil)

// NewDiscardingGathererProvider creates a provider returning gatherer for every view.
func NewDiscardingGathererProvider(gatherer DiscardingGatherer) *DiscardingGathererProvider {
	return &DiscardingGathererProvider{gatherer: gatherer}
}

// StatisticsGatherer implements ports.GraphExecutorStatisticsGathererProvider.
func (p *DiscardingGathererProvider) StatisticsGatherer(domain.UniqueID) ports.GraphExecutorStatisticsGatherer {
	return p.gatherer
}
