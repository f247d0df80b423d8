package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xmk/internal/adapters/state"
	"go.trai.ch/xmk/internal/core/domain"
)

func newStore(t *testing.T) *state.Store {
	t.Helper()
	s, err := state.NewStore()
	require.NoError(t, err)
	return s
}

func TestStore_GetWithoutState(t *testing.T) {
	s := newStore(t)

	info, err := s.Get(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := newStore(t)
	root := t.TempDir()

	want := domain.BuildInfo{
		Fingerprint: "deadbeefdeadbeef",
		Invocation:  []string{"xcodebuild", "build"},
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(root, want))

	got, err := s.Get(root)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Fingerprint, got.Fingerprint)
	assert.Equal(t, want.Invocation, got.Invocation)
	assert.True(t, want.GeneratedAt.Equal(got.GeneratedAt))
}

func TestStore_GetCorruptState(t *testing.T) {
	s := newStore(t)
	root := t.TempDir()

	stateDir := filepath.Join(root, domain.DefaultStateDir())
	require.NoError(t, os.MkdirAll(stateDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, "build-info.json"), []byte("{not json"), 0o644))

	_, err := s.Get(root)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_MoveAsideAndRestore(t *testing.T) {
	s := newStore(t)
	dir := filepath.Join(t.TempDir(), "XCBuildData")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.db"), []byte("state"), 0o644))

	require.NoError(t, s.MoveAside(dir))
	assert.NoFileExists(t, filepath.Join(dir, "manifest.db"))
	assert.FileExists(t, filepath.Join(dir+".xmk-saved", "manifest.db"))

	require.NoError(t, s.Restore(dir))
	assert.FileExists(t, filepath.Join(dir, "manifest.db"))
	assert.NoDirExists(t, dir+".xmk-saved")
}

func TestStore_MoveAsideMissingDir(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.MoveAside(filepath.Join(t.TempDir(), "absent")))
}

func TestStore_MoveAsideReplacesLeftover(t *testing.T) {
	s := newStore(t)
	dir := filepath.Join(t.TempDir(), "XCBuildData")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "current"), []byte("x"), 0o644))

	// A parked directory left behind by an interrupted run.
	require.NoError(t, os.MkdirAll(dir+".xmk-saved", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir+".xmk-saved", "stale"), []byte("x"), 0o644))

	require.NoError(t, s.MoveAside(dir))
	assert.FileExists(t, filepath.Join(dir+".xmk-saved", "current"))
	assert.NoFileExists(t, filepath.Join(dir+".xmk-saved", "stale"))
}

func TestStore_RestoreDiscardsMakeResidue(t *testing.T) {
	s := newStore(t)
	dir := filepath.Join(t.TempDir(), "XCBuildData")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.db"), []byte("state"), 0o644))
	require.NoError(t, s.MoveAside(dir))

	// The make run recreated the directory in the meantime.
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "residue"), []byte("x"), 0o644))

	require.NoError(t, s.Restore(dir))
	assert.FileExists(t, filepath.Join(dir, "manifest.db"))
	assert.NoFileExists(t, filepath.Join(dir, "residue"))
}

func TestStore_RestoreWithoutParkedDir(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Restore(filepath.Join(t.TempDir(), "absent")))
}

func TestStore_EmptyDirIsNoop(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.MoveAside(""))
	require.NoError(t, s.Restore(""))
}
