package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xmk/cmd/xmk/commands"
	"go.trai.ch/xmk/internal/app"
	"go.trai.ch/xmk/internal/build"
)

type mockApp struct {
	buildFunc     func(ctx context.Context, opts app.BuildOptions) error
	translateFunc func(ctx context.Context, opts app.TranslateOptions) error
	cleanFunc     func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Translate(ctx context.Context, opts app.TranslateOptions) error {
	if m.translateFunc != nil {
		return m.translateFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires the force flag", func(t *testing.T) {
		var captured app.BuildOptions
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "--force"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, captured.Force)
	})

	t.Run("defaults to no force", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, opts app.BuildOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, captured.Force)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ app.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "target"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Translate(t *testing.T) {
	t.Run("wires input and output flags", func(t *testing.T) {
		var captured app.TranslateOptions
		mock := &mockApp{
			translateFunc: func(_ context.Context, opts app.TranslateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"translate", "-i", "trace.log", "-o", "out.mk"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "trace.log", captured.Input)
		assert.Equal(t, "out.mk", captured.Output)
	})

	t.Run("defaults to configured paths", func(t *testing.T) {
		var captured app.TranslateOptions
		mock := &mockApp{
			translateFunc: func(_ context.Context, opts app.TranslateOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"translate"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.Input)
		assert.Empty(t, captured.Output)
	})
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--all"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.All)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), build.Version)
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"bogus"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}
