package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gradlerun/internal/config"
	"github.com/vk/gradlerun/internal/ctxlog"
	"github.com/vk/gradlerun/internal/fsutil"
)

// Extension is the file extension the loader picks up from directories.
const Extension = ".hcl"

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader returns a loader whose expressions can read the process
// environment.
func NewLoader() *Loader {
	return &Loader{evalCtx: defaultEvalContext()}
}

// newLoaderWithEnv is used by tests to pin the environment.
func newLoaderWithEnv(environ []string) *Loader {
	return &Loader{evalCtx: newEvalContext(environ)}
}

// Load parses every .hcl file under paths and builds the settings model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	decls, err := l.ReadDeclarations(ctx, paths...)
	if err != nil {
		return nil, err
	}
	model, err := decls.Build()
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("HCL loading complete.", "projects", len(model.Projects), "runs", len(model.Runs))
	return model, nil
}

// ReadDeclarations parses every .hcl file under paths without validating
// references between files.
func (l *Loader) ReadDeclarations(ctx context.Context, paths ...string) (*config.Declarations, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	decls := &config.Declarations{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		fileDecls, diags := l.decodeFile(file, hclFile.Body)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if err := decls.Merge(fileDecls); err != nil {
			return nil, err
		}
	}
	return decls, nil
}

// decodeFile translates the blocks of one file. Relative project
// directories are resolved against the directory of the file.
func (l *Loader) decodeFile(file string, body hcl.Body) (*config.Declarations, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	baseDir := filepath.Dir(file)
	decls := &config.Declarations{}

	for _, block := range content.Blocks {
		switch block.Type {
		case "workspace":
			if decls.Workspace != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  `Duplicate "workspace" block`,
					Detail:   `Only one "workspace" block is allowed.`,
					Subject:  &block.DefRange,
				})
				continue
			}
			settings, blockDiags := decodeSettings(block.Body, l.evalCtx)
			diags = append(diags, blockDiags...)
			decls.Workspace = &settings
			decls.WorkspaceOrigin = block.DefRange.String()

		case "project":
			project, blockDiags := l.decodeProject(block, baseDir)
			diags = append(diags, blockDiags...)
			decls.Projects = append(decls.Projects, project)

		case "run":
			run, blockDiags := l.decodeRun(block)
			diags = append(diags, blockDiags...)
			decls.Runs = append(decls.Runs, run)
		}
	}
	return decls, diags
}

func (l *Loader) decodeProject(block *hcl.Block, baseDir string) (config.ProjectDecl, hcl.Diagnostics) {
	var raw projectBody
	diags := gohcl.DecodeBody(block.Body, l.evalCtx, &raw)
	if diags.HasErrors() {
		return config.ProjectDecl{}, diags
	}
	settings, settingsDiags := decodeSettings(raw.Remain, l.evalCtx)
	diags = append(diags, settingsDiags...)

	dir := raw.ProjectDir
	if dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		dir = filepath.Clean(dir)
	}

	return config.ProjectDecl{
		Name:                      block.Labels[0],
		ProjectDir:                dir,
		OverrideWorkspaceSettings: raw.OverrideWorkspaceSettings,
		AutoSync:                  raw.AutoSync,
		Settings:                  settings,
		Origin:                    block.DefRange.String(),
	}, diags
}

func (l *Loader) decodeRun(block *hcl.Block) (config.RunDecl, hcl.Diagnostics) {
	var raw runBody
	diags := gohcl.DecodeBody(block.Body, l.evalCtx, &raw)
	if diags.HasErrors() {
		return config.RunDecl{}, diags
	}
	settings, settingsDiags := decodeSettings(raw.Remain, l.evalCtx)
	diags = append(diags, settingsDiags...)

	return config.RunDecl{
		Name:                  block.Labels[0],
		Project:               raw.Project,
		Tasks:                 raw.Tasks,
		OverrideBuildSettings: raw.OverrideBuildSettings,
		Settings:              settings,
		Origin:                block.DefRange.String(),
	}, diags
}
