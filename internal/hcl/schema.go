package hcl

import "github.com/hashicorp/hcl/v2"

// rootSchema lists the top-level blocks of a settings file. It is applied
// with Content, so unknown blocks and attributes are errors.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "workspace"},
		{Type: "project", LabelNames: []string{"name"}},
		{Type: "run", LabelNames: []string{"name"}},
	},
}

// settingsBody holds the attributes shared by workspace, project and run
// blocks. Argument lists accept either a list of strings or a single string
// that is split with shell quoting rules, so they are kept as expressions.
type settingsBody struct {
	GradleDistribution *string        `hcl:"gradle_distribution,optional"`
	GradleUserHome     *string        `hcl:"gradle_user_home,optional"`
	JavaHome           *string        `hcl:"java_home,optional"`
	Arguments          hcl.Expression `hcl:"arguments,optional"`
	JvmArguments       hcl.Expression `hcl:"jvm_arguments,optional"`
	OfflineMode        *bool          `hcl:"offline_mode,optional"`
	BuildScansEnabled  *bool          `hcl:"build_scans_enabled,optional"`
	ShowExecutionsView *bool          `hcl:"show_executions_view,optional"`
	ShowConsoleView    *bool          `hcl:"show_console_view,optional"`
}

// projectBody is the content of a `project` block.
type projectBody struct {
	ProjectDir                string   `hcl:"project_dir"`
	OverrideWorkspaceSettings *bool    `hcl:"override_workspace_settings,optional"`
	AutoSync                  *bool    `hcl:"auto_sync,optional"`
	Remain                    hcl.Body `hcl:",remain"`
}

// runBody is the content of a `run` block.
type runBody struct {
	Project               string   `hcl:"project"`
	Tasks                 []string `hcl:"tasks,optional"`
	OverrideBuildSettings *bool    `hcl:"override_build_settings,optional"`
	Remain                hcl.Body `hcl:",remain"`
}
