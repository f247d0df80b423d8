// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging. Recoverable translator skips are
// reported through Warn so they are observable without stopping the pass.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
