package domain

import "fmt"

// ComponentID identifies the component a resolved artifact belongs to.
// It is one of exactly three kinds: an external module, a project in
// the workspace, or a reserved platform API notation.
type ComponentID interface {
	fmt.Stringer
	isComponentID()
}

// ModuleComponentID identifies an externally resolved module.
type ModuleComponentID struct {
	Group   string
	Name    string
	Version string
}

func (m ModuleComponentID) isComponentID() {}

func (m ModuleComponentID) String() string {
	return m.Group + ":" + m.Name + ":" + m.Version
}

// ProjectComponentID identifies a locally built project in the
// workspace.
type ProjectComponentID struct {
	Path string
}

func (p ProjectComponentID) isComponentID() {}

func (p ProjectComponentID) String() string {
	return "project " + p.Path
}

// PlatformAPIComponentID identifies a reserved platform API notation.
// Artifacts of this origin never enter the instrumented classpath.
type PlatformAPIComponentID struct {
	Notation string
}

func (p PlatformAPIComponentID) isComponentID() {}

func (p PlatformAPIComponentID) String() string {
	return p.Notation
}

// ComponentFilter is an origin predicate used when querying the
// resolution engine for artifacts at a phase.
type ComponentFilter func(ComponentID) bool

// IsPlatformAPI reports whether the component is a reserved platform
// API dependency.
func IsPlatformAPI(id ComponentID) bool {
	_, ok := id.(PlatformAPIComponentID)
	return ok
}

// IsProjectComponent reports whether the component is an in-workspace
// project dependency.
func IsProjectComponent(id ComponentID) bool {
	_, ok := id.(ProjectComponentID)
	return ok
}

// IsExternalComponent reports whether the component is an external
// dependency, i.e. neither a project nor a platform API.
func IsExternalComponent(id ComponentID) bool {
	return !IsPlatformAPI(id) && !IsProjectComponent(id)
}

// NotPlatformAPI filters out platform API origins only.
func NotPlatformAPI(id ComponentID) bool {
	return !IsPlatformAPI(id)
}
