package ports

// OriginalFileCache is the build-scoped cache service bridging
// placeholder files back to their original content. One instance lives
// for exactly one resolution: stages Put concurrently while the engine
// executes, the assembler Gets on the calling goroutine afterwards, and
// the resolution context Clears unconditionally at the end.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type OriginalFileCache interface {
	// Put stores the original file under its content hash. Idempotent;
	// safe for concurrent use. A hash collision implies identical
	// content, so overwriting is harmless.
	Put(hash, originalFile string)

	// Get returns the original file stored under the hash. A miss is a
	// pipeline invariant violation and yields
	// domain.ErrCacheInconsistency.
	Get(hash string) (string, error)

	// Clear drops all entries. Called exactly once, after the final
	// classpath has been materialized.
	Clear()
}
