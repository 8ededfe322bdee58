package resolver

import (
	"cmp"
	"context"
	"slices"

	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
)

// assemble merges the outputs of the two instrumentation pipelines back
// into one classpath ordered like the original declaration. The two
// pipelines are scheduled independently and give no ordering guarantee
// on their own.
func assemble(
	ctx context.Context,
	engine ports.ResolutionEngine,
	cache ports.OriginalFileCache,
	cfg *domain.Configuration,
	originals []domain.ResolvedArtifact,
) (domain.ClassPath, error) {
	// The same artifact can show up multiple times when intermediate
	// transforms fan out; the explicit order keeps the first position.
	order := domain.OrderingKey(originals)

	external, err := engine.Select(ctx, cfg, domain.PhaseInstrumentedAndUpgraded, domain.IsExternalComponent)
	if err != nil {
		return domain.ClassPath{}, err
	}
	project, err := engine.Select(ctx, cfg, domain.PhaseInstrumentedOnly, domain.IsProjectComponent)
	if err != nil {
		return domain.ClassPath{}, err
	}

	type entry struct {
		file     string
		origin   domain.OriginIdentity
		position int
	}
	combined := make([]domain.ResolvedArtifact, 0, len(external)+len(project))
	combined = append(combined, external...)
	combined = append(combined, project...)

	entries := make([]entry, 0, len(combined))
	for _, artifact := range combined {
		origin, err := domain.TransformedOrigin(artifact)
		if err != nil {
			return domain.ClassPath{}, err
		}
		entries = append(entries, entry{
			file:     artifact.File,
			origin:   origin,
			position: order.Position(origin),
		})
	}

	// Stable sort by declaration position: origins unknown to the order
	// all share the past-the-end position and keep their relative
	// encounter order, external before project.
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.position, b.position)
	})

	seen := make(map[domain.OriginIdentity]struct{}, len(entries))
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.origin]; ok {
			continue
		}
		seen[e.origin] = struct{}{}

		file := e.file
		if domain.IsPlaceholderFile(file) {
			original, err := cache.Get(domain.PlaceholderHash(file))
			if err != nil {
				return domain.ClassPath{}, err
			}
			file = original
		}
		files = append(files, file)
	}

	return domain.NewClassPath(files...), nil
}
