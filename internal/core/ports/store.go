package ports

import "go.trai.ch/xmk/internal/core/domain"

// StateStore persists the build info between runs and handles the build
// tool's incremental-state directory.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Get returns the recorded build info, or nil if none exists yet.
	Get(root string) (*domain.BuildInfo, error)
	// Put stores the build info.
	Put(root string, info domain.BuildInfo) error
	// MoveAside renames the build tool's incremental-state directory out of
	// the way so makefile-driven builds stay invisible to the tool.
	// A missing directory is not an error.
	MoveAside(dir string) error
	// Restore undoes MoveAside.
	Restore(dir string) error
}
