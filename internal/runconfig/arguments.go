package runconfig

import (
	"slices"

	"github.com/vk/gradlerun/internal/distribution"
)

// GradleArguments is the flattened settings bundle handed to the launcher.
// It is a snapshot: nothing it holds is shared with the configuration it
// was built from. No validation happens here; the launcher rejects what it
// cannot use.
type GradleArguments struct {
	ProjectDir         string                    `json:"project_dir"`
	GradleDistribution distribution.Distribution `json:"gradle_distribution"`
	GradleUserHome     string                    `json:"gradle_user_home,omitempty"`
	JavaHome           string                    `json:"java_home,omitempty"`
	BuildScansEnabled  bool                      `json:"build_scans_enabled"`
	OfflineMode        bool                      `json:"offline_mode"`
	Arguments          []string                  `json:"arguments"`
	JvmArguments       []string                  `json:"jvm_arguments"`
	Tasks              []string                  `json:"tasks"`
}

// ToGradleArguments resolves every setting once and freezes the result.
func (r *RunConfiguration) ToGradleArguments() GradleArguments {
	return GradleArguments{
		ProjectDir:         r.ProjectConfiguration().ProjectDir(),
		GradleDistribution: r.GradleDistribution(),
		GradleUserHome:     r.GradleUserHome(),
		JavaHome:           r.JavaHome(),
		BuildScansEnabled:  r.BuildScansEnabled(),
		OfflineMode:        r.OfflineMode(),
		Arguments:          r.Arguments(),
		JvmArguments:       r.JvmArguments(),
		Tasks:              r.Tasks(),
	}
}

// Clone returns a deep copy of a.
func (a GradleArguments) Clone() GradleArguments {
	a.Arguments = slices.Clone(a.Arguments)
	a.JvmArguments = slices.Clone(a.JvmArguments)
	a.Tasks = slices.Clone(a.Tasks)
	return a
}

// Equal reports field-wise equality.
func (a GradleArguments) Equal(other GradleArguments) bool {
	return a.ProjectDir == other.ProjectDir &&
		a.GradleDistribution == other.GradleDistribution &&
		a.GradleUserHome == other.GradleUserHome &&
		a.JavaHome == other.JavaHome &&
		a.BuildScansEnabled == other.BuildScansEnabled &&
		a.OfflineMode == other.OfflineMode &&
		slices.Equal(a.Arguments, other.Arguments) &&
		slices.Equal(a.JvmArguments, other.JvmArguments) &&
		slices.Equal(a.Tasks, other.Tasks)
}
