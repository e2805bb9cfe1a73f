package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/internal/adapters/calcnode"
	"go.trai.ch/prism/internal/adapters/config"
	"go.trai.ch/prism/internal/adapters/telemetry"
	"go.trai.ch/prism/internal/app"
	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/prism/internal/core/ports/mocks"
	"go.trai.ch/prism/internal/engine/compilation"
	"go.trai.ch/prism/internal/engine/depgraph"
	"go.trai.ch/prism/internal/engine/statistics"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

const marksWorkspace = `
version: "1"
securities:
  - id: SEC~ACME
    name: Acme Corp
    type: EQUITY
functions:
  - id: Mark
    output: MarkValue
    target: SECURITY
    inputs:
      - value: MarketPrice
liveData: [MarketPrice]
views:
  - name: Marks
    calcConfigs:
      - name: Default
        specificRequirements:
          - value: MarkValue
            target: SECURITY
            id: SEC~ACME
`

func writeWorkspace(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
	return dir
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func newApp(t *testing.T, log ports.Logger, node ports.CalculationNode, dir string, out *bytes.Buffer) *app.App {
	t.Helper()
	tracer := telemetry.NewNoOpTracer()
	if node == nil {
		node = calcnode.NewLocal(tracer, log)
	}
	return app.New(
		config.NewLoader(log),
		log,
		compilation.NewCompiler(log, tracer),
		depgraph.Factory{},
		node,
		statistics.NewTotallingProvider(),
		statistics.NewDiscardingGathererProvider(statistics.DiscardingGatherer{}),
	).WithWorkDir(dir).WithOutput(out).WithDisableOTel()
}

func TestApp_Compile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	var out bytes.Buffer

	a := newApp(t, log, nil, writeWorkspace(t, marksWorkspace), &out)
	require.NoError(t, a.Compile(context.Background(), "Marks"))

	report := out.String()
	assert.Contains(t, report, "compiled Marks")
	assert.Contains(t, report, "· Default")
	assert.Contains(t, report, "nodes: 2")
	assert.Contains(t, report, "terminal outputs: 1")
	assert.Contains(t, report, "security types: EQUITY")
	assert.Contains(t, report, "outputs: MarkValue, MarketPrice")
}

func TestApp_Compile_SelectsOnlyView(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	a := newApp(t, quietLogger(ctrl), nil, writeWorkspace(t, marksWorkspace), &out)
	require.NoError(t, a.Compile(context.Background(), ""))
	assert.Contains(t, out.String(), "compiled Marks")
}

// noLiveData leaves the MarketPrice input of Mark unsatisfied.
const noLiveData = `
version: "1"
securities:
  - id: SEC~ACME
    type: EQUITY
functions:
  - id: Mark
    output: MarkValue
    target: SECURITY
    inputs:
      - value: MarketPrice
views:
  - name: Marks
    calcConfigs:
      - name: Default
        specificRequirements:
          - value: MarkValue
            target: SECURITY
            id: SEC~ACME
`

func TestApp_Compile_Errors(t *testing.T) {
	twoViews := marksWorkspace + `
  - name: Other
    calcConfigs:
      - name: Default
        specificRequirements:
          - value: MarketPrice
            target: SECURITY
            id: SEC~ACME
`
	tests := []struct {
		name    string
		config  string
		view    string
		wantErr error
	}{
		{name: "unknown view", config: marksWorkspace, view: "Missing", wantErr: domain.ErrViewNotFound},
		{name: "ambiguous view", config: twoViews, wantErr: domain.ErrNoViewSpecified},
		{name: "unsatisfied requirement", config: noLiveData, view: "Marks", wantErr: domain.ErrUnsatisfiedRequirement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			var out bytes.Buffer

			a := newApp(t, quietLogger(ctrl), nil, writeWorkspace(t, tt.config), &out)
			err := a.Compile(context.Background(), tt.view)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.Empty(t, out.String())
		})
	}
}

func TestApp_Compile_ConfigNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	a := newApp(t, quietLogger(ctrl), nil, t.TempDir(), &out)
	err := a.Compile(context.Background(), "Marks")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	a := newApp(t, quietLogger(ctrl), nil, writeWorkspace(t, marksWorkspace), &out)
	require.NoError(t, a.Run(context.Background(), "Marks", app.RunOptions{Cycles: 2}))

	report := out.String()
	assert.Contains(t, report, "cycle 1")
	assert.Contains(t, report, "cycle 2")
	assert.Contains(t, report, "Default nodes=2 jobs=")
	assert.Contains(t, report, "statistics ViewProcess~Marks~1")
	assert.Contains(t, report, "processed graphs: 2")
	assert.Contains(t, report, "executed graphs: 2")
	assert.Contains(t, report, "executed nodes: 4")
	assert.Contains(t, report, "average graph size: 2.00")
}

func TestApp_Run_NewViewProcessPerRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	a := newApp(t, quietLogger(ctrl), nil, writeWorkspace(t, marksWorkspace), &out)
	require.NoError(t, a.Run(context.Background(), "Marks", app.RunOptions{}))
	require.NoError(t, a.Run(context.Background(), "Marks", app.RunOptions{}))

	assert.Contains(t, out.String(), "statistics ViewProcess~Marks~1")
	assert.Contains(t, out.String(), "statistics ViewProcess~Marks~2")
}

func TestApp_Run_StatisticsDisabled(t *testing.T) {
	tests := []struct {
		name   string
		config string
		opts   app.RunOptions
	}{
		{name: "by option", config: marksWorkspace, opts: app.RunOptions{Cycles: 1, NoStatistics: true}},
		{name: "by workspace", config: marksWorkspace + "statistics:\n  enabled: false\n", opts: app.RunOptions{Cycles: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			var out bytes.Buffer

			a := newApp(t, quietLogger(ctrl), nil, writeWorkspace(t, tt.config), &out)
			require.NoError(t, a.Run(context.Background(), "Marks", tt.opts))

			assert.Contains(t, out.String(), "cycle 1")
			assert.NotContains(t, out.String(), "statistics")
		})
	}
}

func TestApp_Run_JobFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	node := mocks.NewMockCalculationNode(ctrl)
	node.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(errors.New("node offline")).MinTimes(1)

	a := newApp(t, quietLogger(ctrl), node, writeWorkspace(t, marksWorkspace), &out)
	err := a.Run(context.Background(), "Marks", app.RunOptions{Cycles: 3})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrViewExecutionFailed)
	assert.ErrorContains(t, err, "node offline")
	assert.NotContains(t, out.String(), "cycle 1")
}

func TestApp_Run_InvalidDecayFactor(t *testing.T) {
	for _, factor := range []string{"2", ".nan"} {
		t.Run(factor, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			var out bytes.Buffer

			node := mocks.NewMockCalculationNode(ctrl)
			cfg := marksWorkspace + "statistics:\n  decayFactor: " + factor + "\n"

			a := newApp(t, quietLogger(ctrl), node, writeWorkspace(t, cfg), &out)
			err := a.Run(context.Background(), "Marks", app.RunOptions{Cycles: 1})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidDecayFactor.Error())
		})
	}
}

func TestApp_Run_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	var out bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newApp(t, quietLogger(ctrl), nil, writeWorkspace(t, marksWorkspace), &out)
	err := a.Run(ctx, "Marks", app.RunOptions{Cycles: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
