// Package transform provides the reference implementations of the four
// instrumentation stages. The resolution core treats stages as opaque
// functions; these implementations exist to run the pipeline end to end
// and honor the cache and identifier contracts a stage must keep.
package transform

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stages bundles the four stage functions wired into the pipelines.
type Stages struct {
	workDir string
	hasher  ports.ContentHasher
}

// NewStages creates the reference stages. Instrumented copies and
// placeholder files are written into workDir.
func NewStages(workDir string, hasher ports.ContentHasher) *Stages {
	return &Stages{workDir: workDir, hasher: hasher}
}

// Analysis hashes the artifact content and registers the original file
// in the build-scoped cache, so a later stage can substitute a
// placeholder. Runs concurrently across artifacts.
func (s *Stages) Analysis(ctx context.Context, in domain.ResolvedArtifact, params ports.StageParameters) ([]domain.ResolvedArtifact, error) {
	hash, err := s.hasher.HashFile(in.File)
	if err != nil {
		return nil, err
	}
	params.Cache.Put(hash, in.File)
	return []domain.ResolvedArtifact{{File: in.File, ID: transformedID(in)}}, nil
}

// Merge cross-checks the analyzed artifact against the original,
// untransformed classpath contents and, when the analyzed-artifact
// view is bound, against the recorded analysis.
func (s *Stages) Merge(ctx context.Context, in domain.ResolvedArtifact, params ports.StageParameters) ([]domain.ResolvedArtifact, error) {
	identity := in.OriginIdentity()
	if !containsOrigin(params.OriginalClasspath(), identity) {
		return nil, zerr.With(domain.ErrNotOnOriginalClasspath, "file", in.File)
	}
	if params.AnalysisResult != nil && !containsOrigin(params.AnalysisResult(), identity) {
		return nil, zerr.With(domain.ErrAnalysisMissing, "file", in.File)
	}
	return []domain.ResolvedArtifact{{File: in.File, ID: transformedID(in)}}, nil
}

func containsOrigin(artifacts []domain.ResolvedArtifact, identity domain.OriginIdentity) bool {
	for _, a := range artifacts {
		if a.OriginIdentity() == identity {
			return true
		}
	}
	return false
}

// ExternalInstrument instruments an external dependency. With a runtime
// agent available the artifact is left untouched: the original is
// registered under its content hash and a placeholder stands in for it
// on the classpath. Without an agent an instrumented copy is written.
func (s *Stages) ExternalInstrument(ctx context.Context, in domain.ResolvedArtifact, params ports.StageParameters) ([]domain.ResolvedArtifact, error) {
	if params.AgentAvailable {
		return s.passThrough(in, params)
	}
	return s.instrumentCopy(in)
}

// ProjectInstrument instruments a project dependency. Project outputs
// are mutable, locally built files, so they are always rewritten fresh
// and never pass through as placeholders.
func (s *Stages) ProjectInstrument(ctx context.Context, in domain.ResolvedArtifact, params ports.StageParameters) ([]domain.ResolvedArtifact, error) {
	return s.instrumentCopy(in)
}

// passThrough substitutes a small placeholder for an unchanged
// artifact. The original stays recoverable from the cache by hash.
func (s *Stages) passThrough(in domain.ResolvedArtifact, params ports.StageParameters) ([]domain.ResolvedArtifact, error) {
	hash, err := s.hasher.HashFile(in.File)
	if err != nil {
		return nil, err
	}
	params.Cache.Put(hash, in.File)

	placeholder := filepath.Join(s.workDir, domain.PlaceholderFileName(hash))
	if err := os.WriteFile(placeholder, nil, 0o644); err != nil { //nolint:gosec // placeholder is empty by contract
		return nil, zerr.With(zerr.Wrap(err, "failed to write placeholder"), "path", placeholder)
	}
	return []domain.ResolvedArtifact{{File: placeholder, ID: transformedID(in)}}, nil
}

// instrumentCopy writes the instrumented artifact next to the work dir.
// The bytecode rewriting itself is out of scope; the copy keeps the
// original content.
func (s *Stages) instrumentCopy(in domain.ResolvedArtifact) ([]domain.ResolvedArtifact, error) {
	dst := filepath.Join(s.workDir, "instrumented-"+filepath.Base(in.File))
	if err := copyFile(in.File, dst); err != nil {
		return nil, err
	}
	return []domain.ResolvedArtifact{{File: dst, ID: transformedID(in)}}, nil
}

// transformedID carries the origin back-reference forward. The first
// stage of a chain derives it from the plain identifier; later stages
// keep the one already attached.
func transformedID(in domain.ResolvedArtifact) domain.TransformedIdentifier {
	if id, ok := in.ID.(domain.TransformedIdentifier); ok {
		return id
	}
	return domain.TransformedIdentifier{
		Component:        in.ID.ComponentID(),
		OriginalFileName: filepath.Base(in.File),
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path comes from the resolved configuration
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dst) //nolint:gosec // Path is inside the work dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create instrumented artifact"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to write instrumented artifact"), "path", dst)
	}
	return out.Close()
}
