package domain

// DeclaredDependency is one entry of a configuration in declaration
// order: a file plus the component it belongs to.
type DeclaredDependency struct {
	File      string
	Component ComponentID
}

// VersionConstraint narrows the acceptable versions of a module on a
// configuration. Used to keep known-vulnerable versions off the
// classpath.
type VersionConstraint struct {
	// Module is the group:name coordinate the constraint applies to.
	Module string
	// Require is the minimum acceptable version.
	Require string
	// Reject is the rejected version range.
	Reject string
}

// Configuration is a named, resolvable set of declared dependencies.
// Declaration order is significant: it defines the order of the final
// classpath.
type Configuration struct {
	Name         string
	Dependencies []DeclaredDependency
	Attributes   map[string]string
	Constraints  []VersionConstraint
}

// NewConfiguration creates a configuration with the given name and
// dependencies in declaration order.
func NewConfiguration(name string, deps ...DeclaredDependency) *Configuration {
	return &Configuration{
		Name:         name,
		Dependencies: deps,
		Attributes:   make(map[string]string),
	}
}

// SetAttribute records a resolution attribute on the configuration.
func (c *Configuration) SetAttribute(name, value string) {
	if c.Attributes == nil {
		c.Attributes = make(map[string]string)
	}
	c.Attributes[name] = value
}
