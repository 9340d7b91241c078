package config

import (
	"slices"

	"github.com/vk/gradlerun/internal/distribution"
)

// RunProperties is the input to NewRunConfigurationProperties.
type RunProperties struct {
	Tasks                 []string
	OverrideBuildSettings bool
	Settings              BuildSettings
}

// RunConfigurationProperties is the per-launch override bundle. Its settings
// take effect only when OverrideBuildSettings is set; the tasks always do.
type RunConfigurationProperties struct {
	tasks                 []string
	overrideBuildSettings bool
	settings              BuildSettings
}

// NewRunConfigurationProperties returns an immutable snapshot of props.
func NewRunConfigurationProperties(props RunProperties) *RunConfigurationProperties {
	return &RunConfigurationProperties{
		tasks:                 cloneStrings(props.Tasks),
		overrideBuildSettings: props.OverrideBuildSettings,
		settings:              props.Settings.Clone(),
	}
}

func (r *RunConfigurationProperties) Tasks() []string { return cloneStrings(r.tasks) }
func (r *RunConfigurationProperties) OverrideBuildSettings() bool { return r.overrideBuildSettings }
func (r *RunConfigurationProperties) GradleDistribution() distribution.Distribution { return r.settings.GradleDistribution }
func (r *RunConfigurationProperties) GradleUserHome() string { return r.settings.GradleUserHome }
func (r *RunConfigurationProperties) JavaHome() string { return r.settings.JavaHome }
func (r *RunConfigurationProperties) Arguments() []string { return cloneStrings(r.settings.Arguments) }
func (r *RunConfigurationProperties) JvmArguments() []string { return cloneStrings(r.settings.JvmArguments) }
func (r *RunConfigurationProperties) OfflineMode() bool { return r.settings.OfflineMode }
func (r *RunConfigurationProperties) BuildScansEnabled() bool { return r.settings.BuildScansEnabled }
func (r *RunConfigurationProperties) ShowExecutionView() bool { return r.settings.ShowExecutionsView }
func (r *RunConfigurationProperties) ShowConsoleView() bool { return r.settings.ShowConsoleView }

// Settings returns a copy of the override settings.
func (r *RunConfigurationProperties) Settings() BuildSettings {
	return r.settings.Clone()
}

// Equal reports structural equality.
func (r *RunConfigurationProperties) Equal(other *RunConfigurationProperties) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.overrideBuildSettings == other.overrideBuildSettings &&
		slices.Equal(r.tasks, other.tasks) &&
		r.settings.Equal(other.settings)
}

// Hash is consistent with Equal.
func (r *RunConfigurationProperties) Hash() uint64 {
	h := newHasher()
	if r == nil {
		return h.sum()
	}
	h.strings(r.tasks)
	h.bool(r.overrideBuildSettings)
	r.settings.writeHash(h)
	return h.sum()
}
