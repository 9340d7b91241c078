package config

import "github.com/vk/gradlerun/internal/distribution"

// BuildConfigurationProperties is the persisted, project-level input to
// NewBuildConfiguration.
type BuildConfigurationProperties struct {
	ProjectDir                string
	OverrideWorkspaceSettings bool
	AutoSync                  bool
	Settings                  BuildSettings
}

// BuildConfiguration is the effective, project-wide settings snapshot. When
// the project does not override the workspace settings, the workspace values
// were copied in at construction time.
type BuildConfiguration struct {
	projectDir                string
	overrideWorkspaceSettings bool
	autoSync                  bool
	settings                  BuildSettings
}

// NewBuildConfiguration flattens props over workspace. The workspace is
// required even when props override it, so that switching the override off
// later never needs a different input.
func NewBuildConfiguration(props BuildConfigurationProperties, workspace *WorkspaceConfiguration) (*BuildConfiguration, error) {
	if props.ProjectDir == "" {
		return nil, &InvalidConfigurationError{Field: "project directory", Reason: "must not be empty"}
	}
	if workspace == nil {
		return nil, missing("workspace configuration")
	}

	settings := Resolve(props.OverrideWorkspaceSettings,
		props.Settings.Clone,
		workspace.Settings,
	)

	return &BuildConfiguration{
		projectDir:                props.ProjectDir,
		overrideWorkspaceSettings: props.OverrideWorkspaceSettings,
		autoSync:                  props.AutoSync,
		settings:                  settings,
	}, nil
}

func (b *BuildConfiguration) ProjectDir() string { return b.projectDir }
func (b *BuildConfiguration) OverridesWorkspaceSettings() bool { return b.overrideWorkspaceSettings }
func (b *BuildConfiguration) AutoSync() bool { return b.autoSync }
func (b *BuildConfiguration) GradleDistribution() distribution.Distribution { return b.settings.GradleDistribution }
func (b *BuildConfiguration) GradleUserHome() string { return b.settings.GradleUserHome }
func (b *BuildConfiguration) JavaHome() string { return b.settings.JavaHome }
func (b *BuildConfiguration) Arguments() []string { return cloneStrings(b.settings.Arguments) }
func (b *BuildConfiguration) JvmArguments() []string { return cloneStrings(b.settings.JvmArguments) }
func (b *BuildConfiguration) OfflineMode() bool { return b.settings.OfflineMode }
func (b *BuildConfiguration) BuildScansEnabled() bool { return b.settings.BuildScansEnabled }
func (b *BuildConfiguration) ShowExecutionsView() bool { return b.settings.ShowExecutionsView }
func (b *BuildConfiguration) ShowConsoleView() bool { return b.settings.ShowConsoleView }

// Settings returns a copy of the effective settings.
func (b *BuildConfiguration) Settings() BuildSettings {
	return b.settings.Clone()
}

// Equal reports structural equality.
func (b *BuildConfiguration) Equal(other *BuildConfiguration) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.projectDir == other.projectDir &&
		b.overrideWorkspaceSettings == other.overrideWorkspaceSettings &&
		b.autoSync == other.autoSync &&
		b.settings.Equal(other.settings)
}

// Hash is consistent with Equal.
func (b *BuildConfiguration) Hash() uint64 {
	h := newHasher()
	if b == nil {
		return h.sum()
	}
	h.string(b.projectDir)
	h.bool(b.overrideWorkspaceSettings)
	h.bool(b.autoSync)
	b.settings.writeHash(h)
	return h.sum()
}
