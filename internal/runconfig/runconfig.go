package runconfig

import (
	"github.com/vk/gradlerun/internal/config"
	"github.com/vk/gradlerun/internal/distribution"
)

// RunConfiguration is a read-only view over a project configuration and a
// run's override properties. It keeps no state of its own: every accessor
// re-reads the override flag and the project's current build snapshot.
type RunConfiguration struct {
	project    *config.ProjectConfiguration
	properties *config.RunConfigurationProperties
}

// New returns the run configuration for project and properties. Both are
// required; a nil one yields a *config.InvalidConfigurationError.
func New(project *config.ProjectConfiguration, properties *config.RunConfigurationProperties) (*RunConfiguration, error) {
	if project == nil {
		return nil, &config.InvalidConfigurationError{Field: "project configuration", Reason: "must not be nil"}
	}
	if properties == nil {
		return nil, &config.InvalidConfigurationError{Field: "run configuration properties", Reason: "must not be nil"}
	}
	return &RunConfiguration{project: project, properties: properties}, nil
}

// resolve picks the run's value when it overrides the build settings and the
// project's otherwise.
func resolve[T any](r *RunConfiguration, fromRun func(*config.RunConfigurationProperties) T, fromBuild func(*config.BuildConfiguration) T) T {
	return config.Resolve(r.properties.OverrideBuildSettings(),
		func() T { return fromRun(r.properties) },
		func() T { return fromBuild(r.project.BuildConfiguration()) },
	)
}

// ProjectConfiguration returns the project this run belongs to.
func (r *RunConfiguration) ProjectConfiguration() *config.ProjectConfiguration {
	return r.project
}

// Properties returns the run's override properties.
func (r *RunConfiguration) Properties() *config.RunConfigurationProperties {
	return r.properties
}

// OverridesBuildSettings reports whether the run's settings are in effect.
func (r *RunConfiguration) OverridesBuildSettings() bool {
	return r.properties.OverrideBuildSettings()
}

// Tasks always come from the run; a project has no tasks of its own.
func (r *RunConfiguration) Tasks() []string {
	return r.properties.Tasks()
}

func (r *RunConfiguration) GradleDistribution() distribution.Distribution {
	return resolve(r, (*config.RunConfigurationProperties).GradleDistribution, (*config.BuildConfiguration).GradleDistribution)
}

func (r *RunConfiguration) GradleUserHome() string {
	return resolve(r, (*config.RunConfigurationProperties).GradleUserHome, (*config.BuildConfiguration).GradleUserHome)
}

func (r *RunConfiguration) JavaHome() string {
	return resolve(r, (*config.RunConfigurationProperties).JavaHome, (*config.BuildConfiguration).JavaHome)
}

func (r *RunConfiguration) JvmArguments() []string {
	return resolve(r, (*config.RunConfigurationProperties).JvmArguments, (*config.BuildConfiguration).JvmArguments)
}

func (r *RunConfiguration) Arguments() []string {
	return resolve(r, (*config.RunConfigurationProperties).Arguments, (*config.BuildConfiguration).Arguments)
}

func (r *RunConfiguration) OfflineMode() bool {
	return resolve(r, (*config.RunConfigurationProperties).OfflineMode, (*config.BuildConfiguration).OfflineMode)
}

func (r *RunConfiguration) BuildScansEnabled() bool {
	return resolve(r, (*config.RunConfigurationProperties).BuildScansEnabled, (*config.BuildConfiguration).BuildScansEnabled)
}

func (r *RunConfiguration) ShowExecutionView() bool {
	return resolve(r, (*config.RunConfigurationProperties).ShowExecutionView, (*config.BuildConfiguration).ShowExecutionsView)
}

func (r *RunConfiguration) ShowConsoleView() bool {
	return resolve(r, (*config.RunConfigurationProperties).ShowConsoleView, (*config.BuildConfiguration).ShowConsoleView)
}

// Equal reports whether both runs compose equal project configurations and
// equal properties.
func (r *RunConfiguration) Equal(other *RunConfiguration) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.project.Equal(other.project) && r.properties.Equal(other.properties)
}

// Hash is consistent with Equal and can key de-duplication caches.
func (r *RunConfiguration) Hash() uint64 {
	return config.CombineHashes(r.project.Hash(), r.properties.Hash())
}
