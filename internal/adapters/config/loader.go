// Package config provides the workspace configuration loader for
// clasp.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/clasp/internal/core/domain"
	"go.trai.ch/clasp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the workspace file loaded when none is configured.
const DefaultFilename = "clasp.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the workspace file from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Configuration, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a workspace file from the given path and returns the
// configuration to resolve, with dependencies in declaration order.
func Load(path string) (*domain.Configuration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read workspace file")
	}

	var file Claspfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workspace file")
	}

	name := file.Configuration
	if name == "" {
		name = "classpath"
	}

	cfg := domain.NewConfiguration(name)
	for _, dto := range file.Dependencies {
		dep, err := toDependency(dto)
		if err != nil {
			return nil, err
		}
		cfg.Dependencies = append(cfg.Dependencies, dep)
	}
	return cfg, nil
}

func toDependency(dto DependencyDTO) (domain.DeclaredDependency, error) {
	if dto.File == "" {
		return domain.DeclaredDependency{}, zerr.New("dependency is missing a file")
	}

	component, err := toComponent(dto)
	if err != nil {
		return domain.DeclaredDependency{}, zerr.With(err, "file", dto.File)
	}
	return domain.DeclaredDependency{File: dto.File, Component: component}, nil
}

func toComponent(dto DependencyDTO) (domain.ComponentID, error) {
	declared := 0
	for _, v := range []string{dto.Module, dto.Project, dto.Platform} {
		if v != "" {
			declared++
		}
	}
	if declared != 1 {
		return nil, zerr.New("dependency needs exactly one of module, project or platform")
	}

	switch {
	case dto.Project != "":
		return domain.ProjectComponentID{Path: dto.Project}, nil
	case dto.Platform != "":
		return domain.PlatformAPIComponentID{Notation: dto.Platform}, nil
	default:
		parts := strings.Split(dto.Module, ":")
		if len(parts) != 3 {
			return nil, zerr.With(zerr.New("module must be group:name:version"), "module", dto.Module)
		}
		return domain.ModuleComponentID{Group: parts[0], Name: parts[1], Version: parts[2]}, nil
	}
}
