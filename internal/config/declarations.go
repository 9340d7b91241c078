package config

import (
	"fmt"

	"github.com/vk/gradlerun/internal/distribution"
)

// SettingsDecl is a BuildSettings as written in a settings file. A nil field
// was not declared and keeps the default.
type SettingsDecl struct {
	GradleDistribution *string
	GradleUserHome     *string
	JavaHome           *string
	Arguments          []string
	JvmArguments       []string
	OfflineMode        *bool
	BuildScansEnabled  *bool
	ShowExecutionsView *bool
	ShowConsoleView    *bool
}

// Apply returns base with every declared field replaced.
func (d SettingsDecl) Apply(base BuildSettings) (BuildSettings, error) {
	s := base.Clone()
	if d.GradleDistribution != nil {
		dist, err := distribution.Parse(*d.GradleDistribution)
		if err != nil {
			return BuildSettings{}, err
		}
		s.GradleDistribution = dist
	}
	if d.GradleUserHome != nil {
		s.GradleUserHome = *d.GradleUserHome
	}
	if d.JavaHome != nil {
		s.JavaHome = *d.JavaHome
	}
	if d.Arguments != nil {
		s.Arguments = cloneStrings(d.Arguments)
	}
	if d.JvmArguments != nil {
		s.JvmArguments = cloneStrings(d.JvmArguments)
	}
	if d.OfflineMode != nil {
		s.OfflineMode = *d.OfflineMode
	}
	if d.BuildScansEnabled != nil {
		s.BuildScansEnabled = *d.BuildScansEnabled
	}
	if d.ShowExecutionsView != nil {
		s.ShowExecutionsView = *d.ShowExecutionsView
	}
	if d.ShowConsoleView != nil {
		s.ShowConsoleView = *d.ShowConsoleView
	}
	return s, nil
}

// ProjectDecl is a declared project. Origin locates the declaration for
// error messages.
type ProjectDecl struct {
	Name                      string
	ProjectDir                string
	OverrideWorkspaceSettings *bool
	AutoSync                  *bool
	Settings                  SettingsDecl
	Origin                    string
}

// RunDecl is a declared run.
type RunDecl struct {
	Name                  string
	Project               string
	Tasks                 []string
	OverrideBuildSettings *bool
	Settings              SettingsDecl
	Origin                string
}

// Declarations collects everything read from one or more settings files
// before it is validated and turned into a Model.
type Declarations struct {
	Workspace       *SettingsDecl
	WorkspaceOrigin string
	Projects        []ProjectDecl
	Runs            []RunDecl
}

// Merge appends other into d. At most one workspace may be declared.
func (d *Declarations) Merge(other *Declarations) error {
	if other.Workspace != nil {
		if d.Workspace != nil {
			return fmt.Errorf("%s: duplicate workspace block, first declared at %s", other.WorkspaceOrigin, d.WorkspaceOrigin)
		}
		d.Workspace = other.Workspace
		d.WorkspaceOrigin = other.WorkspaceOrigin
	}
	d.Projects = append(d.Projects, other.Projects...)
	d.Runs = append(d.Runs, other.Runs...)
	return nil
}

// Build validates the declarations and produces the model. Undeclared
// fields take the documented defaults.
func (d *Declarations) Build() (*Model, error) {
	workspace := DefaultWorkspaceConfiguration()
	if d.Workspace != nil {
		settings, err := d.Workspace.Apply(DefaultBuildSettings())
		if err != nil {
			return nil, fmt.Errorf("%s: workspace: %w", d.WorkspaceOrigin, err)
		}
		workspace = NewWorkspaceConfiguration(settings)
	}

	model := &Model{
		Workspace: workspace,
		Projects:  make(map[string]*ProjectConfiguration, len(d.Projects)),
		Runs:      make(map[string]*RunDefinition, len(d.Runs)),
	}

	for _, p := range d.Projects {
		if _, exists := model.Projects[p.Name]; exists {
			return nil, fmt.Errorf("%s: duplicate project %q", p.Origin, p.Name)
		}
		project, err := p.build(workspace)
		if err != nil {
			return nil, fmt.Errorf("%s: project %q: %w", p.Origin, p.Name, err)
		}
		model.Projects[p.Name] = project
	}

	for _, r := range d.Runs {
		if _, exists := model.Runs[r.Name]; exists {
			return nil, fmt.Errorf("%s: duplicate run %q", r.Origin, r.Name)
		}
		if _, known := model.Projects[r.Project]; !known {
			return nil, fmt.Errorf("%s: run %q references unknown project %q", r.Origin, r.Name, r.Project)
		}
		settings, err := r.Settings.Apply(DefaultBuildSettings())
		if err != nil {
			return nil, fmt.Errorf("%s: run %q: %w", r.Origin, r.Name, err)
		}
		model.Runs[r.Name] = &RunDefinition{
			Name:    r.Name,
			Project: r.Project,
			Properties: NewRunConfigurationProperties(RunProperties{
				Tasks:                 r.Tasks,
				OverrideBuildSettings: boolOr(r.OverrideBuildSettings, false),
				Settings:              settings,
			}),
		}
	}
	return model, nil
}

func (p ProjectDecl) build(workspace *WorkspaceConfiguration) (*ProjectConfiguration, error) {
	settings, err := p.Settings.Apply(DefaultBuildSettings())
	if err != nil {
		return nil, err
	}
	build, err := NewBuildConfiguration(BuildConfigurationProperties{
		ProjectDir:                p.ProjectDir,
		OverrideWorkspaceSettings: boolOr(p.OverrideWorkspaceSettings, false),
		AutoSync:                  boolOr(p.AutoSync, false),
		Settings:                  settings,
	}, workspace)
	if err != nil {
		return nil, err
	}
	return NewProjectConfiguration(p.ProjectDir, build)
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
