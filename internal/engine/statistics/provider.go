package statistics

import (
	"sync"
	"time"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
)

// PerViewProvider keeps exactly one gatherer per view process, created on
// first request.
type PerViewProvider[G ports.GraphExecutorStatisticsGatherer] struct {
	newGatherer func(viewProcessID domain.UniqueID) G
	dropBefore  func(g G, cutoff time.Time) bool
	gatherers   sync.Map // domain.UniqueID -> G
}

var _ ports.GraphExecutorStatisticsGathererProvider = (*PerViewProvider[*TotallingGatherer])(nil)

// NewPerViewProvider creates a provider. newGatherer builds the gatherer of a
// view; dropBefore reports whether a gatherer should be removed for a cutoff.
func NewPerViewProvider[G ports.GraphExecutorStatisticsGatherer](
	newGatherer func(viewProcessID domain.UniqueID) G,
	dropBefore func(g G, cutoff time.Time) bool,
) *PerViewProvider[G] {
	return &PerViewProvider[G]{
		newGatherer: newGatherer,
		dropBefore:  dropBefore,
	}
}

// NewTotallingProvider creates a provider of TotallingGatherers. A view is
// dropped once all of its configurations have been idle since the cutoff.
func NewTotallingProvider() *PerViewProvider[*TotallingGatherer] {
	return NewPerViewProvider(NewTotallingGatherer, (*TotallingGatherer).DropStatisticsBefore)
}

// Gatherer returns the gatherer of a view process, creating it if absent.
// Concurrent first calls all observe the same instance.
func (p *PerViewProvider[G]) Gatherer(viewProcessID domain.UniqueID) G {
	if g, ok := p.gatherers.Load(viewProcessID); ok {
		return g.(G)
	}
	g, _ := p.gatherers.LoadOrStore(viewProcessID, p.newGatherer(viewProcessID))
	return g.(G)
}

// StatisticsGatherer implements ports.GraphExecutorStatisticsGathererProvider.
func (p *PerViewProvider[G]) StatisticsGatherer(viewProcessID domain.UniqueID) ports.GraphExecutorStatisticsGatherer {
	return p.Gatherer(viewProcessID)
}

// ViewStatistics returns a point-in-time copy of the registry.
func (p *PerViewProvider[G]) ViewStatistics() map[domain.UniqueID]G {
	out := make(map[domain.UniqueID]G)
	p.gatherers.Range(func(k, v any) bool {
		out[k.(domain.UniqueID)] = v.(G)
		return true
	})
	return out
}

// Range calls fn for each registered view until fn returns false.
func (p *PerViewProvider[G]) Range(fn func(viewProcessID domain.UniqueID, g G) bool) {
	p.gatherers.Range(func(k, v any) bool {
		return fn(k.(domain.UniqueID), v.(G))
	})
}

// DropStatisticsBefore removes every view whose gatherer matches the drop
// predicate for cutoff and returns how many were removed.
func (p *PerViewProvider[G]) DropStatisticsBefore(cutoff time.Time) int {
	dropped := 0
	p.gatherers.Range(func(k, v any) bool {
		if p.dropBefore(v.(G), cutoff) {
			p.gatherers.Delete(k)
			dropped++
		}
		return true
	})
	return dropped
}
