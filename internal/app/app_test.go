package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gradlerun/internal/config"
	"github.com/vk/gradlerun/internal/launch"
)

const settingsHCL = `
workspace {
  gradle_distribution = "4.9"
  gradle_user_home    = "/home/u/.gradle"
}

project "app" {
  project_dir = "/work/app"
}

run "build" {
  project = "app"
  tasks   = ["build"]
}

run "build-again" {
  project = "app"
  tasks   = ["build"]
}

run "test" {
  project                 = "app"
  tasks                   = ["test"]
  override_build_settings = true
  gradle_distribution     = "5.0"
  offline_mode            = true
}
`

type recordingLauncher struct {
	mu    sync.Mutex
	calls []*launch.Invocation
	err   error
}

func (l *recordingLauncher) Run(_ context.Context, inv *launch.Invocation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, inv)
	return l.err
}

func setupApp(t *testing.T, cfg Config, opts ...Option) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gradlerun.hcl")
	require.NoError(t, os.WriteFile(path, []byte(settingsHCL), 0o600))

	cfg.SettingsPaths = []string{path}
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	a, err := NewApp(out, logs, appConfig, opts...)
	require.NoError(t, err)
	return a, out, logs
}

func TestRun_PrintsJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	a, out, _ := setupApp(t, Config{All: true, Format: "json", LogLevel: "error"})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	var results []struct {
		Name        string         `json:"name"`
		Project     string         `json:"project"`
		DuplicateOf string         `json:"duplicate_of"`
		Arguments   map[string]any `json:"arguments"`
		Command     struct {
			Executable string   `json:"executable"`
			Args       []string `json:"args"`
			Provision  struct {
				Args []string `json:"args"`
			} `json:"provision"`
		} `json:"command"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 3)

	assert.Equal(t, "build", results[0].Name)
	assert.Equal(t, "GRADLE_DISTRIBUTION(VERSION(4.9))", results[0].Arguments["gradle_distribution"])
	assert.Equal(t, "/home/u/.gradle", results[0].Arguments["gradle_user_home"])
	assert.Equal(t, filepath.Join("/home/u/.gradle", "gradlerun", "wrappers", "versions", "4.9", "gradlew"), results[0].Command.Executable)
	assert.Equal(t, []string{"wrapper", "--gradle-version", "4.9"}, results[0].Command.Provision.Args)

	assert.Equal(t, "build-again", results[1].Name)
	assert.Equal(t, "build", results[1].DuplicateOf)

	assert.Equal(t, "test", results[2].Name)
	assert.Empty(t, results[2].DuplicateOf)
	assert.Equal(t, "GRADLE_DISTRIBUTION(VERSION(5.0))", results[2].Arguments["gradle_distribution"])
	assert.Equal(t, true, results[2].Arguments["offline_mode"])
	assert.Equal(t, []string{"--project-dir", "/work/app", "--offline", "test"}, results[2].Command.Args)
	assert.Equal(t, []string{"wrapper", "--gradle-version", "5.0"}, results[2].Command.Provision.Args)
}

func TestRun_PrintsText(t *testing.T) {
	t.Parallel()

	a, out, _ := setupApp(t, Config{Runs: []string{"test"}, LogLevel: "error"})

	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Run: test (project app)\n")
	assert.Contains(t, text, "Gradle Distribution: Gradle 5.0\n")
	assert.Contains(t, text, "Offline Mode Enabled: true\n")
	assert.Contains(t, text, "Provision: gradle wrapper --gradle-version 5.0 (in ")
	assert.Contains(t, text, filepath.Join("gradlerun", "wrappers", "versions", "5.0", "gradlew")+" --project-dir /work/app --offline test\n")
}

func TestRun_ExecutesEachDistinctConfigurationOnce(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	launcher := &recordingLauncher{}
	a, _, logs := setupApp(t, Config{
		Runs:     []string{"build", "test", "build-again"},
		Execute:  true,
		LogLevel: "debug",
	}, WithLauncher(launcher))

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, launcher.calls, 2)
	assert.Equal(t, []string{"--project-dir", "/work/app", "--gradle-user-home", "/home/u/.gradle", "build"}, launcher.calls[0].Args)
	assert.Equal(t, []string{"--project-dir", "/work/app", "--offline", "test"}, launcher.calls[1].Args)
	assert.Contains(t, logs.String(), "duplicate_of=build")

	// A second run on the same App starts from an empty cache.
	require.NoError(t, a.Run(context.Background()))
	assert.Len(t, launcher.calls, 4)
}

func TestRun_DeduplicatesBeyondCacheSize(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// With room for one entry, "test" would evict "build" before
	// "build-again" is resolved.
	launcher := &recordingLauncher{}
	a, _, _ := setupApp(t, Config{
		Runs:      []string{"build", "test", "build-again"},
		Execute:   true,
		CacheSize: 1,
	}, WithLauncher(launcher))

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Len(t, launcher.calls, 2)
}

func TestRun_SettingsPaths(t *testing.T) {
	t.Parallel()

	t.Run("missing default is skipped", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfig(Config{All: true, Format: "json"})
		require.NoError(t, err)
		cfg.SettingsPaths = []string{filepath.Join(t.TempDir(), DefaultSettingsPath)}
		out := &bytes.Buffer{}
		a, err := NewApp(out, &bytes.Buffer{}, cfg)
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Equal(t, "[]\n", out.String())
	})

	t.Run("missing named path is an error", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "typo.hcl")
		cfg, err := NewConfig(Config{SettingsPaths: []string{missing}, All: true, Format: "json"})
		require.NoError(t, err)
		out := &bytes.Buffer{}
		a, err := NewApp(out, &bytes.Buffer{}, cfg)
		require.NoError(t, err)

		err = a.Run(context.Background())

		require.Error(t, err)
		assert.EqualError(t, err, "settings path "+missing+" does not exist")
		assert.Empty(t, out.String())
	})
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown run", func(t *testing.T) {
		t.Parallel()
		a, _, _ := setupApp(t, Config{Runs: []string{"deploy"}})

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown run "deploy"`)
	})

	t.Run("launcher failure", func(t *testing.T) {
		t.Parallel()
		launcher := &recordingLauncher{err: errors.New("exit status 1")}
		a, _, _ := setupApp(t, Config{Runs: []string{"build"}, Execute: true}, WithLauncher(launcher))

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), `run "build": exit status 1`)
	})

	t.Run("loader failure", func(t *testing.T) {
		t.Parallel()
		a, _, _ := setupApp(t, Config{All: true}, WithLoader(failingLoader{}))

		err := a.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load settings: boom")
	})
}

type failingLoader struct{}

func (failingLoader) Load(context.Context, ...string) (*config.Model, error) {
	return nil, errors.New("boom")
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{SettingsPaths: []string{"x.hcl"}, All: true})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 128, cfg.CacheSize)

	cfg, err = NewConfig(Config{All: true})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultSettingsPath}, cfg.SettingsPaths)
	assert.True(t, cfg.defaultSettings)

	_, err = NewConfig(Config{SettingsPaths: []string{"x.hcl"}})
	assert.ErrorContains(t, err, "no runs selected")

	_, err = NewConfig(Config{SettingsPaths: []string{"x.hcl"}, All: true, Format: "xml"})
	assert.ErrorContains(t, err, "invalid format")
}
