package config

import (
	"context"
	"sort"
)

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given files or directories and translates
	// them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Model is the unified, format-agnostic representation of every settings
// file that was loaded.
type Model struct {
	Workspace *WorkspaceConfiguration
	Projects  map[string]*ProjectConfiguration
	Runs      map[string]*RunDefinition
}

// RunDefinition is a named launch of a project.
type RunDefinition struct {
	Name       string
	Project    string
	Properties *RunConfigurationProperties
}

// RunNames returns the names of all runs in lexical order.
func (m *Model) RunNames() []string {
	names := make([]string, 0, len(m.Runs))
	for name := range m.Runs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeclarationReader is implemented by loaders whose raw declarations can be
// merged with those of other formats before the model is built.
type DeclarationReader interface {
	ReadDeclarations(ctx context.Context, paths ...string) (*Declarations, error)
}

// MultiLoader reads declarations with every reader, merges them and builds
// one model, so that a workspace in one format can serve runs in another.
type MultiLoader []DeclarationReader

// Load implements Loader.
func (m MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	all := &Declarations{}
	for _, r := range m {
		decls, err := r.ReadDeclarations(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := all.Merge(decls); err != nil {
			return nil, err
		}
	}
	return all.Build()
}
