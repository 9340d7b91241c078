package config

import "sync/atomic"

// ProjectConfiguration binds a project directory to the build configuration
// of the build it belongs to. For a subproject the directory differs from
// BuildConfiguration().ProjectDir(), which is the root of the build.
type ProjectConfiguration struct {
	projectDir string
	build      atomic.Pointer[BuildConfiguration]
}

// NewProjectConfiguration returns the configuration for projectDir.
func NewProjectConfiguration(projectDir string, build *BuildConfiguration) (*ProjectConfiguration, error) {
	if projectDir == "" {
		return nil, &InvalidConfigurationError{Field: "project directory", Reason: "must not be empty"}
	}
	if build == nil {
		return nil, missing("build configuration")
	}
	p := &ProjectConfiguration{projectDir: projectDir}
	p.build.Store(build)
	return p, nil
}

// ProjectDir returns the project directory.
func (p *ProjectConfiguration) ProjectDir() string {
	return p.projectDir
}

// BuildConfiguration returns the current build configuration snapshot.
func (p *ProjectConfiguration) BuildConfiguration() *BuildConfiguration {
	return p.build.Load()
}

// ReplaceBuildConfiguration swaps in a new snapshot after a settings change.
// Readers see either the old or the new snapshot, never a mix.
func (p *ProjectConfiguration) ReplaceBuildConfiguration(build *BuildConfiguration) error {
	if build == nil {
		return missing("build configuration")
	}
	p.build.Store(build)
	return nil
}

// Equal compares the project directories and the current build snapshots.
func (p *ProjectConfiguration) Equal(other *ProjectConfiguration) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.projectDir == other.projectDir && p.BuildConfiguration().Equal(other.BuildConfiguration())
}

// Hash is consistent with Equal for the current snapshot.
func (p *ProjectConfiguration) Hash() uint64 {
	h := newHasher()
	if p == nil {
		return h.sum()
	}
	h.string(p.projectDir)
	h.uint(p.BuildConfiguration().Hash())
	return h.sum()
}
