package config

import (
	"slices"

	"github.com/vk/gradlerun/internal/distribution"
)

// BuildSettings is the group of settings that every layer (workspace,
// project, run) can declare and that a lower layer can override.
type BuildSettings struct {
	GradleDistribution distribution.Distribution
	GradleUserHome     string
	JavaHome           string
	Arguments          []string
	JvmArguments       []string
	OfflineMode        bool
	BuildScansEnabled  bool
	ShowExecutionsView bool
	ShowConsoleView    bool
}

// DefaultBuildSettings returns the settings used when nothing is declared:
// the wrapper distribution, Gradle's own default homes, no extra arguments,
// online, no build scans, and both views visible.
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{
		GradleDistribution: distribution.FromWrapper(),
		ShowExecutionsView: true,
		ShowConsoleView:    true,
	}
}

// Clone returns a deep copy of s.
func (s BuildSettings) Clone() BuildSettings {
	s.Arguments = cloneStrings(s.Arguments)
	s.JvmArguments = cloneStrings(s.JvmArguments)
	return s
}

// Equal reports whether s and other hold the same settings. A nil and an
// empty argument list are equal.
func (s BuildSettings) Equal(other BuildSettings) bool {
	return s.GradleDistribution == other.GradleDistribution &&
		s.GradleUserHome == other.GradleUserHome &&
		s.JavaHome == other.JavaHome &&
		slices.Equal(s.Arguments, other.Arguments) &&
		slices.Equal(s.JvmArguments, other.JvmArguments) &&
		s.OfflineMode == other.OfflineMode &&
		s.BuildScansEnabled == other.BuildScansEnabled &&
		s.ShowExecutionsView == other.ShowExecutionsView &&
		s.ShowConsoleView == other.ShowConsoleView
}

func (s BuildSettings) writeHash(h *hasher) {
	h.string(s.GradleDistribution.String())
	h.string(s.GradleUserHome)
	h.string(s.JavaHome)
	h.strings(s.Arguments)
	h.strings(s.JvmArguments)
	h.bool(s.OfflineMode)
	h.bool(s.BuildScansEnabled)
	h.bool(s.ShowExecutionsView)
	h.bool(s.ShowConsoleView)
}

// cloneStrings copies in, normalizing nil to an empty slice so that
// accessors never hand out nil.
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
