package app

import (
	"fmt"
	"io"
	"strings"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/engine/compilation"
	"go.trai.ch/prism/internal/engine/dispatch"
	"go.trai.ch/prism/internal/engine/statistics"
	"go.trai.ch/prism/internal/ui/style"
)

// reportWriter collects the first write error so renderers can stay linear.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reportWriter) field(label string, value any) {
	r.printf("  %s %v\n", style.Label.Render(label+":"), value)
}

func renderCompilation(w io.Writer, view *domain.ViewDefinition, model *compilation.ViewEvaluationModel) error {
	r := &reportWriter{w: w}
	r.printf("%s %s\n", style.Success.Render(style.Check), style.Heading.Render("compiled "+view.Name()))

	for _, name := range model.CalculationConfigurationNames() {
		g, _ := model.DependencyGraph(name)
		r.printf("%s %s\n", style.Dot, name)
		r.field("nodes", g.NodeCount())
		r.field("terminal outputs", len(g.TerminalOutputs()))
		r.field("live data", len(g.AllRequiredLiveData()))
	}

	if p := model.Portfolio(); p != nil {
		r.field("portfolio", p.UniqueID())
	}
	r.field("targets", len(model.AllComputationTargets()))
	r.field("security types", joinOrNone(model.AllSecurityTypes()))
	r.field("outputs", joinOrNone(model.AllOutputValueNames()))

	liveData := make([]string, 0, len(model.AllLiveDataRequirements()))
	for _, spec := range model.AllLiveDataRequirements() {
		liveData = append(liveData, spec.ValueName+"@"+spec.Target.String())
	}
	r.field("live data requirements", joinOrNone(liveData))
	return r.err
}

func renderCycle(w io.Writer, cycle int, executions []dispatch.GraphExecution) error {
	r := &reportWriter{w: w}
	r.printf("%s %s\n", style.Success.Render(style.Check), style.Heading.Render(fmt.Sprintf("cycle %d", cycle)))
	for _, e := range executions {
		r.printf("  %s %s nodes=%d jobs=%d execution=%s duration=%s\n",
			style.Dot, e.CalcConfig, e.Nodes, e.Jobs, e.ExecutionTime, e.Duration)
	}
	return r.err
}

func renderStatistics(w io.Writer, viewProcessID domain.UniqueID, stats []*statistics.GraphExecutionStatistics) error {
	r := &reportWriter{w: w}
	r.printf("%s\n", style.Heading.Render("statistics "+viewProcessID.String()))
	for _, s := range stats {
		r.printf("%s %s\n", style.Dot, s.CalculationConfiguration())
		r.field("processed graphs", s.ProcessedGraphs())
		r.field("executed graphs", s.ExecutedGraphs())
		r.field("executed nodes", s.ExecutedNodes())
		r.field("average graph size", fmt.Sprintf("%.2f", s.AverageGraphSize()))
		r.field("average job count", fmt.Sprintf("%.2f", s.AverageJobCount()))
		r.field("average job size", fmt.Sprintf("%.2f", s.AverageJobSize()))
		r.field("average execution time", s.AverageExecutionTime())
		r.field("average actual time", s.AverageActualTime())
	}
	return r.err
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
