package domain

import "time"

// File permissions for state files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// BuildInfo records what the current makefile was generated from, so a later
// run can decide between reusing it and re-capturing the trace.
type BuildInfo struct {
	// Fingerprint covers the capture invocation and the project manifests.
	Fingerprint string `json:"fingerprint"`
	// Invocation is the exact capture argv the makefile was generated from.
	Invocation []string `json:"invocation"`
	// GeneratedAt is when the makefile was generated.
	GeneratedAt time.Time `json:"generated_at"`
}

// DefaultStateDir is the dot-directory holding xmk's own state.
func DefaultStateDir() string {
	return ".xmk"
}
