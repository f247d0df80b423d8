package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	out    io.Writer
	err    io.Writer
}

// Stdout returns a writer that captures the standard output stream and
// echoes it to the terminal.
func (v *Vertex) Stdout() io.Writer {
	return io.MultiWriter(v.vertex.Stdout(), v.out)
}

// Stderr returns a writer that captures the error output stream and echoes
// it to the terminal.
func (v *Vertex) Stderr() io.Writer {
	return io.MultiWriter(v.vertex.Stderr(), v.err)
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
