// Package state persists the build info between runs and moves the build
// tool's incremental-state directory aside while make runs.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/zerr"
)

// movedSuffix marks a build-data directory parked by MoveAside.
const movedSuffix = ".xmk-saved"

// Store implements ports.StateStore on top of a JSON file per project root.
type Store struct{}

// NewStore creates a new Store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get returns the recorded build info, or nil if none exists yet.
func (s *Store) Get(root string) (*domain.BuildInfo, error) {
	data, err := os.ReadFile(s.filename(root)) //nolint:gosec // path under the project's state dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return &info, nil
}

// Put stores the build info.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// MoveAside renames the build tool's incremental-state directory out of the
// way. A missing directory is not an error; a leftover parked directory from
// an interrupted run is removed first.
func (s *Store) MoveAside(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := os.RemoveAll(dir + movedSuffix); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildDataMoveFailed.Error()), "dir", dir)
	}
	if err := os.Rename(dir, dir+movedSuffix); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildDataMoveFailed.Error()), "dir", dir)
	}
	return nil
}

// Restore undoes MoveAside. A missing parked directory is not an error.
func (s *Store) Restore(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir + movedSuffix); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	// Whatever the make run left at the original path is superseded by the
	// tool's own state.
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildDataMoveFailed.Error()), "dir", dir)
	}
	if err := os.Rename(dir+movedSuffix, dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildDataMoveFailed.Error()), "dir", dir)
	}
	return nil
}

func (s *Store) filename(root string) string {
	return filepath.Join(root, domain.DefaultStateDir(), "build-info.json")
}
