package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_PrintsResolvedRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	settings := filepath.Join(tempDir, "gradlerun.yaml")
	err := os.WriteFile(settings, []byte(`
projects:
  app:
    project_dir: /work/app
runs:
  build:
    project: app
    tasks: [build]
`), 0600)
	require.NoError(t, err, "failed to set up test file")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err = run(context.Background(), out, errOut, []string{"-settings", settings, "build"})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Run: build (project app)")
	require.Contains(t, out.String(), "Command: /work/app/gradlew --project-dir /work/app build")
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// An HCL file with a syntax error.
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "gradlerun.hcl")
	err := os.WriteFile(filePath, []byte(`project "app" {`), 0600)
	require.NoError(t, err, "failed to set up test file")

	// --- Act ---
	runErr := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-settings", filePath, "-all"})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to load settings")
	require.Contains(t, runErr.Error(), "failed to parse HCL file")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
