package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gradlerun/internal/app"
	"github.com/vk/gradlerun/internal/testutil"
)

// Test for: config merges from a directory path
func TestCLI_MergesSettings_FromDirectoryPath(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"settings/a.hcl": `
project "app" {
  project_dir = "/work/app"
}
`,
		"settings/b.yml": `
runs:
  build:
    project: app
    tasks: [build]
`,
		"settings/notes.txt": "not a settings file",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		SettingsPaths: []string{"settings"},
		Runs:          []string{"build"},
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "Run: build (project app)\n")
	assert.Contains(t, result.LogOutput, "Settings loaded.")
}

// Test for: explicit file paths
func TestCLI_MergesSettings_FromFilePaths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"workspace.yaml": "workspace:\n  gradle_distribution: \"6.1\"\n",
		"app.hcl": `
project "app" {
  project_dir = "/work/app"
}

run "build" {
  project = "app"
  tasks   = ["build"]
}
`,
		"ignored.hcl": "this is not even valid HCL {",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		SettingsPaths: []string{"workspace.yaml", "app.hcl"},
		All:           true,
		Format:        "json",
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	results := result.Results(t)
	require.Len(t, results, 1)
	assert.Equal(t, "GRADLE_DISTRIBUTION(VERSION(6.1))", results[0].Arguments["gradle_distribution"])
}

// Test for: a named settings path that does not exist
func TestCLI_MissingSettingsPath_Fails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"app.hcl": `
project "app" {
  project_dir = "/work/app"
}

run "build" {
  project = "app"
  tasks   = ["build"]
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{
		SettingsPaths: []string{"app.hcl", "typo.hcl"},
		All:           true,
	})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "typo.hcl does not exist")
	assert.Empty(t, result.Output)
	assert.Empty(t, result.Launcher.Calls)
}
