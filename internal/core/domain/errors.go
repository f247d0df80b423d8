package domain

import "go.trai.ch/zerr"

var (
	// ErrTraceOpenFailed is returned when the captured trace cannot be opened.
	ErrTraceOpenFailed = zerr.New("failed to open trace file")

	// ErrMakefileWriteFailed is returned when the generated rule file cannot be written.
	ErrMakefileWriteFailed = zerr.New("failed to write makefile")

	// ErrMissingDirectoryContext is returned when a build-step record is not
	// followed by the expected "cd <path>" line. The working directory cannot
	// be guessed, so the whole pass is aborted.
	ErrMissingDirectoryContext = zerr.New("missing directory context line")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the state store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrBuildDataMoveFailed is returned when the build tool's incremental-state
	// directory cannot be moved aside or restored.
	ErrBuildDataMoveFailed = zerr.New("failed to move build data directory")

	// ErrCommandFailed is returned when a subprocess exits with an error.
	ErrCommandFailed = zerr.New("command failed")

	// ErrCaptureFailed is returned when the full build run that produces the trace fails.
	ErrCaptureFailed = zerr.New("trace capture failed")

	// ErrFingerprintFailed is returned when the staleness fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to compute fingerprint")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
