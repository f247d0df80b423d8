package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"

	adapter "go.trai.ch/xmk/internal/adapters/telemetry/progrock"
)

func TestRecorder_RecordProducesUsableVertex(t *testing.T) {
	r := adapter.NewRecorder(progrock.NewTape(), io.Discard, io.Discard)

	ctx, v := r.Record(context.Background(), "capture")
	require.NotNil(t, ctx)
	require.NotNil(t, v)

	n, err := io.WriteString(v.Stdout(), "captured line\n")
	require.NoError(t, err)
	assert.Equal(t, len("captured line\n"), n)
	_, err = io.WriteString(v.Stderr(), "warning line\n")
	require.NoError(t, err)

	v.Complete(nil)
	require.NoError(t, r.Close())
}

// TestRecorder_EchoesVertexOutputToTerminal verifies that what a recorded
// subprocess prints reaches the terminal streams, not just the tape.
func TestRecorder_EchoesVertexOutputToTerminal(t *testing.T) {
	var out, errOut bytes.Buffer
	r := adapter.NewRecorder(progrock.NewTape(), &out, &errOut)

	_, v := r.Record(context.Background(), "make")
	_, err := io.WriteString(v.Stdout(), "main.c:3:1: error: expected ';'\n")
	require.NoError(t, err)
	_, err = io.WriteString(v.Stderr(), "make: *** [main.o] Error 1\n")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "expected ';'")
	assert.Contains(t, errOut.String(), "Error 1")

	v.Complete(errors.New("exit status 2"))
	require.NoError(t, r.Close())
}

func TestRecorder_CompleteWithError(t *testing.T) {
	r := adapter.NewRecorder(progrock.NewTape(), io.Discard, io.Discard)

	_, v := r.Record(context.Background(), "make")
	v.Complete(errors.New("exit status 2"))
	require.NoError(t, r.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	r := adapter.NewRecorder(progrock.NewTape(), io.Discard, io.Discard)

	_, v := r.Record(context.Background(), "capture")
	v.Cached()
	v.Complete(nil)
	require.NoError(t, r.Close())
}
