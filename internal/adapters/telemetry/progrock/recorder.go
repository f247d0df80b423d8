// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/xmk/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library. Vertex
// output is teed to the terminal streams so subprocess output stays visible
// while it is being recorded.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	out io.Writer
	err io.Writer
}

// New creates a new Recorder with a default tape, echoing vertex output to
// stdout and stderr.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape(), os.Stdout, os.Stderr)
}

// NewRecorder creates a new Recorder with the given writer and terminal
// streams.
func NewRecorder(w progrock.Writer, out, errw io.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		out: out,
		err: errw,
	}
}

// Record starts recording a new vertex for the named phase.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := &Vertex{vertex: r.rec.Vertex(d, name), out: r.out, err: r.err}
	return ctx, v
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
