package config

// WorkspaceConfiguration holds the workspace-wide defaults that a project's
// build configuration inherits unless it overrides them.
type WorkspaceConfiguration struct {
	settings BuildSettings
}

// NewWorkspaceConfiguration returns a workspace snapshot of settings.
func NewWorkspaceConfiguration(settings BuildSettings) *WorkspaceConfiguration {
	return &WorkspaceConfiguration{settings: settings.Clone()}
}

// DefaultWorkspaceConfiguration returns a workspace holding DefaultBuildSettings.
func DefaultWorkspaceConfiguration() *WorkspaceConfiguration {
	return NewWorkspaceConfiguration(DefaultBuildSettings())
}

// Settings returns a copy of the workspace settings.
func (w *WorkspaceConfiguration) Settings() BuildSettings {
	return w.settings.Clone()
}

// Equal reports whether both workspaces hold the same settings.
func (w *WorkspaceConfiguration) Equal(other *WorkspaceConfiguration) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.settings.Equal(other.settings)
}
