// Package calcnode provides an in-process calculation node.
package calcnode

import (
	"context"

	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CalculationNode = (*Local)(nil)

// Local executes jobs in the calling goroutine. Nodes carry no pricing
// logic, so executing a node only traces it.
type Local struct {
	tracer ports.Tracer
	logger ports.Logger
}

// NewLocal creates a Local node.
func NewLocal(tracer ports.Tracer, logger ports.Logger) *Local {
	return &Local{tracer: tracer, logger: logger}
}

// Execute runs the nodes of job in order inside a "job" span. It stops at
// the first node reached after ctx is done.
func (l *Local) Execute(ctx context.Context, job ports.CalculationJob) (err error) {
	ctx, span := l.tracer.Start(ctx, "job",
		ports.WithAttribute("view_process", job.ViewProcessID.String()),
		ports.WithAttribute("calc_config", job.CalcConfig),
		ports.WithAttribute("job", job.Index),
		ports.WithAttribute("level", job.Level),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	for i, node := range job.Nodes {
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, "job interrupted"), "executed_nodes", i)
		}
		if node.LiveData {
			continue
		}
		l.logger.Debug("executed node",
			"calc_config", job.CalcConfig,
			"function", node.FunctionID,
			"target", node.Target.Spec.String(),
		)
	}

	span.SetAttribute("nodes", len(job.Nodes))
	return nil
}
