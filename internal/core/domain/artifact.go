package domain

import "path/filepath"

// OriginIdentity is the logical identity of a dependency, independent
// of how many times it is produced or transformed. Two artifacts with
// an equal OriginIdentity are the same logical dependency.
type OriginIdentity struct {
	OriginalFileName string
	Component        ComponentID
}

// ArtifactIdentifier identifies one resolved artifact. It is a variant
// with two cases: a plain identifier for artifacts straight out of
// resolution, and a transformed identifier carrying the origin
// back-reference added by a transform stage.
type ArtifactIdentifier interface {
	ComponentID() ComponentID
	isArtifactIdentifier()
}

// PlainIdentifier identifies an untransformed artifact. Its origin is
// derived from the artifact's own file name.
type PlainIdentifier struct {
	Component ComponentID
}

func (p PlainIdentifier) isArtifactIdentifier() {}

// ComponentID returns the owning component.
func (p PlainIdentifier) ComponentID() ComponentID { return p.Component }

// TransformedIdentifier identifies an artifact produced by a transform
// stage. It carries the file name of the original artifact the stage
// consumed, so the output can be traced back to its declaration.
type TransformedIdentifier struct {
	Component        ComponentID
	OriginalFileName string
}

func (t TransformedIdentifier) isArtifactIdentifier() {}

// ComponentID returns the owning component.
func (t TransformedIdentifier) ComponentID() ComponentID { return t.Component }

// ResolvedArtifact is one artifact produced by the resolution engine
// at query time. It is read-only to this module.
type ResolvedArtifact struct {
	File  string
	ID    ArtifactIdentifier
	Phase Phase
}

// OriginIdentity derives the artifact's logical identity. For
// transformed artifacts the identity comes from the carried origin
// back-reference; for plain artifacts it is derived from the file name
// and the component identifier.
func (a ResolvedArtifact) OriginIdentity() OriginIdentity {
	switch id := a.ID.(type) {
	case TransformedIdentifier:
		return OriginIdentity{OriginalFileName: id.OriginalFileName, Component: id.Component}
	default:
		return OriginIdentity{OriginalFileName: filepath.Base(a.File), Component: a.ID.ComponentID()}
	}
}

// TransformedOrigin extracts the origin identity of an artifact that
// must have been produced by a transform stage. It returns
// ErrMalformedTransformedArtifact when the identifier carries no origin
// back-reference.
func TransformedOrigin(a ResolvedArtifact) (OriginIdentity, error) {
	id, ok := a.ID.(TransformedIdentifier)
	if !ok {
		return OriginIdentity{}, withArtifact(ErrMalformedTransformedArtifact, a)
	}
	return OriginIdentity{OriginalFileName: id.OriginalFileName, Component: id.Component}, nil
}
