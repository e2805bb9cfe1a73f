package ports

import (
	"time"

	"go.trai.ch/prism/internal/core/domain"
)

//go:generate mockgen -source=statistics.go -destination=mocks/mock_statistics.go -package=mocks

// GraphExecutorStatisticsGatherer receives execution outcomes from a job dispatcher.
type GraphExecutorStatisticsGatherer interface {
	// GraphProcessed reports that a graph was partitioned into jobs.
	// Unknown cost means are passed as NaN.
	GraphProcessed(calcConfig string, totalJobs int, meanJobSize, meanJobCycleCost, meanJobIOCost float64)
	// GraphExecuted reports that every job of a graph completed.
	// executionTime is the summed job time, duration the elapsed wall time.
	GraphExecuted(calcConfig string, nodeCount int, executionTime, duration time.Duration)
}

// GraphExecutorStatisticsGathererProvider hands out the gatherer of a view process.
type GraphExecutorStatisticsGathererProvider interface {
	StatisticsGatherer(viewProcessID domain.UniqueID) GraphExecutorStatisticsGatherer
}
