package ports

// Hasher defines the interface for computing the staleness fingerprint.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes the capture invocation together with the content of
	// the given manifest files.
	Fingerprint(invocation []string, manifests []string) (string, error)
}
