package resolver

import (
	"sync"

	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
)

// Context is the scoped handle for one classpath resolution. It bundles
// the resolution's build-scoped cache service with the engine the
// pipelines were registered on, and guarantees the cache is cleared
// once the classpath has been produced.
type Context struct {
	cache  ports.OriginalFileCache
	engine ports.ResolutionEngine

	mu       sync.Mutex
	original []domain.ResolvedArtifact
	analysis []domain.ResolvedArtifact
}

func newContext(cache ports.OriginalFileCache, engine ports.ResolutionEngine) *Context {
	return &Context{cache: cache, engine: engine}
}

// Engine returns the engine this context's pipelines are registered on.
func (c *Context) Engine() ports.ResolutionEngine {
	return c.engine
}

// RunAndClearCachedDataAfter invokes fn with the context's cache
// service and clears the cache unconditionally before returning,
// whether fn succeeded or failed. No cached data leaks into the next
// resolution.
func (c *Context) RunAndClearCachedDataAfter(fn func(ports.OriginalFileCache) (domain.ClassPath, error)) (domain.ClassPath, error) {
	defer c.cache.Clear()
	return fn(c.cache)
}

// setOriginalClasspath records the pre-transform artifact set once the
// configuration has resolved. The merge stage registration holds a
// late-bound reference to it.
func (c *Context) setOriginalClasspath(artifacts []domain.ResolvedArtifact) {
	c.mu.Lock()
	c.original = artifacts
	c.mu.Unlock()
}

// originalClasspath is the ClasspathProvider handed to the merge stage.
func (c *Context) originalClasspath() []domain.ResolvedArtifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.original
}

// setAnalysisResult records the analyzed-artifact view of the external
// dependencies. Like the original classpath, the merge stage
// registration holds a late-bound reference to it.
func (c *Context) setAnalysisResult(artifacts []domain.ResolvedArtifact) {
	c.mu.Lock()
	c.analysis = artifacts
	c.mu.Unlock()
}

// analysisResult is the ClasspathProvider feeding the merge stage the
// analyzed-artifact view.
func (c *Context) analysisResult() []domain.ResolvedArtifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analysis
}
