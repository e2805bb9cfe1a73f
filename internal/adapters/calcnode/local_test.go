package calcnode_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/internal/adapters/calcnode"
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testJob() ports.CalculationJob {
	sec := domain.NewComputationTargetSpecification(domain.TargetSecurity, domain.NewUniqueID("SEC", "ACME", "v1"))
	pos := domain.NewComputationTargetSpecification(domain.TargetPosition, domain.NewUniqueID("POS", "1", "v1"))
	return ports.CalculationJob{
		ViewProcessID: domain.NewUniqueID("VP", "1", ""),
		CalcConfig:    "Default",
		Index:         2,
		Level:         1,
		Nodes: []*domain.DependencyNode{
			{FunctionID: domain.LiveDataFunctionID, Target: domain.ComputationTarget{Spec: sec}, LiveData: true},
			{FunctionID: "EquityPV", Target: domain.ComputationTarget{Spec: pos}},
		},
	}
}

func TestLocal_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	var cfg ports.SpanConfig
	tracer.EXPECT().Start(gomock.Any(), "job", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
			for _, opt := range opts {
				opt(&cfg)
			}
			return ctx, span
		})
	logger.EXPECT().Debug("executed node", "calc_config", "Default", "function", "EquityPV", "target", "SPEC[POSITION POS~1~v1]")
	span.EXPECT().SetAttribute("nodes", 2)
	span.EXPECT().End()

	err := calcnode.NewLocal(tracer, logger).Execute(t.Context(), testJob())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"view_process": "VP~1",
		"calc_config":  "Default",
		"job":          2,
		"level":        1,
	}, cfg.Attributes)
}

func TestLocal_Execute_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "job", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().RecordError(gomock.Any())
	span.EXPECT().End()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := calcnode.NewLocal(tracer, logger).Execute(ctx, testJob())
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "job interrupted")
}
