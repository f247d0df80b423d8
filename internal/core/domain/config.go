package domain

// Config is the resolved xmk configuration.
type Config struct {
	// CaptureCommand is the build tool that produces the trace, e.g. "xcodebuild".
	CaptureCommand string
	// CaptureArgs are the arguments of the full build invocation.
	CaptureArgs []string
	// TracePath is where the captured trace is written.
	TracePath string
	// MakefilePath is where the generated rule file is written.
	MakefilePath string
	// BuildDataDir is the build tool's incremental-state directory, moved
	// aside while make runs so the tool does not see makefile-driven builds.
	BuildDataDir string
	// MakeCommand is the incremental build executor, e.g. "make".
	MakeCommand string
	// MakeJobs is the parallelism passed to the executor.
	MakeJobs int
	// Manifests are project files whose content participates in the
	// staleness fingerprint.
	Manifests []string
}

// CaptureArgv returns the full capture invocation as an argv slice.
func (c *Config) CaptureArgv() []string {
	argv := make([]string, 0, len(c.CaptureArgs)+1)
	argv = append(argv, c.CaptureCommand)
	argv = append(argv, c.CaptureArgs...)
	return argv
}
