package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prism/cmd/prism/commands"
	"go.trai.ch/prism/internal/app"
	"go.trai.ch/prism/internal/build"
)

type mockApp struct {
	compileFunc func(ctx context.Context, viewName string) error
	runFunc     func(ctx context.Context, viewName string, opts app.RunOptions) error
}

func (m *mockApp) Compile(ctx context.Context, viewName string) error {
	if m.compileFunc != nil {
		return m.compileFunc(ctx, viewName)
	}
	return nil
}

func (m *mockApp) Run(ctx context.Context, viewName string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, viewName, opts)
	}
	return nil
}

func TestCommands_Compile(t *testing.T) {
	t.Run("passes the view name", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			compileFunc: func(_ context.Context, viewName string) error {
				captured = viewName
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile", "Equity"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "Equity", captured)
	})

	t.Run("view is optional", func(t *testing.T) {
		called := false
		mock := &mockApp{
			compileFunc: func(_ context.Context, viewName string) error {
				called = true
				assert.Empty(t, viewName)
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"compile", "A", "B"})
		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on compile failure", func(t *testing.T) {
		mock := &mockApp{
			compileFunc: func(_ context.Context, _ string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile", "Equity"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedView string

		mock := &mockApp{
			runFunc: func(_ context.Context, viewName string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedView = viewName
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "Equity", "--cycles", "5", "--no-stats"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{Cycles: 5, NoStatistics: true}, capturedOpts)
		assert.Equal(t, "Equity", capturedView)
	})

	t.Run("defaults to one cycle", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{Cycles: 1}, capturedOpts)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "Equity"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

type recordingLogConfigurer struct {
	verbose, json bool
}

func (r *recordingLogConfigurer) SetVerbose(verbose bool) { r.verbose = verbose }

func (r *recordingLogConfigurer) SetJSON(enabled bool) { r.json = enabled }

func TestCommands_LogFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantVerbose bool
		wantJSON    bool
	}{
		{name: "defaults", args: []string{"compile"}},
		{name: "verbose", args: []string{"-v", "compile"}, wantVerbose: true},
		{name: "json after subcommand", args: []string{"run", "--json"}, wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := &recordingLogConfigurer{}
			cli := commands.New(&mockApp{}, commands.WithLogConfigurer(lc))
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.wantVerbose, lc.verbose)
			assert.Equal(t, tt.wantJSON, lc.json)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"prism version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "prism version "+build.Version)
}
