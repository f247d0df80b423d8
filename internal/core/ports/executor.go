package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running external build tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv in dir (empty means the current directory), streaming
	// the process output to stdout and stderr. It returns an error carrying
	// the exit code if the process fails.
	Execute(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) error
}
