package config

// Claspfile represents the structure of the clasp.yaml workspace file.
type Claspfile struct {
	Version       string          `yaml:"version"`
	Configuration string          `yaml:"configuration"`
	Dependencies  []DependencyDTO `yaml:"dependencies"`
}

// DependencyDTO represents one declared dependency. Exactly one of
// Module, Project or Platform identifies the component.
type DependencyDTO struct {
	File     string `yaml:"file"`
	Module   string `yaml:"module"`
	Project  string `yaml:"project"`
	Platform string `yaml:"platform"`
}
