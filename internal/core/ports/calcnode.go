package ports

import (
	"context"

	"go.trai.ch/prism/internal/core/domain"
)

// CalculationJob is a unit of dependency graph work dispatched to a calculation node.
type CalculationJob struct {
	ViewProcessID domain.UniqueID
	CalcConfig    string
	Index         int
	// Level orders jobs: a job only depends on jobs of lower levels.
	Level int
	Nodes []*domain.DependencyNode
}

// CalculationNode executes calculation jobs.
//
//go:generate mockgen -source=calcnode.go -destination=mocks/mock_calcnode.go -package=mocks
type CalculationNode interface {
	// Execute runs every node of the job in order.
	Execute(ctx context.Context, job CalculationJob) error
}
