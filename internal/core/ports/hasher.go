package ports

// ContentHasher computes content hashes for artifact files. Hashes key
// the build-scoped cache and name placeholder files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// HashFile returns the hex-encoded content hash of the file.
	HashFile(path string) (string, error)
}
