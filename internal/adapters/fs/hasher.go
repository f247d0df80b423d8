// Package fs provides filesystem-backed hashing for the staleness check.
package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/xmk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes the staleness fingerprint with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the capture invocation argv together with the content
// of the given manifest files. A manifest that does not exist contributes
// only its name, so adding or removing one still changes the fingerprint.
func (h *Hasher) Fingerprint(invocation []string, manifests []string) (string, error) {
	hasher := xxhash.New()

	for _, arg := range invocation {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, path := range manifests {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})
		if err := h.hashFile(path, hasher); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (h *Hasher) hashFile(path string, hasher *xxhash.Digest) error {
	f, err := os.Open(path) //nolint:gosec // path comes from the user's config
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return err
		}
		return zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return nil
}
