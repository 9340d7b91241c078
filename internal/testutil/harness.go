// Package testutil provides an end-to-end harness for system tests: it writes
// settings files to a temporary directory and runs the app against them.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gradlerun/internal/app"
	"github.com/vk/gradlerun/internal/launch"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// RecordingLauncher captures invocations instead of starting Gradle.
type RecordingLauncher struct {
	mu    sync.Mutex
	Calls []*launch.Invocation
	Err   error
}

// Run implements app.Launcher.
func (l *RecordingLauncher) Run(_ context.Context, inv *launch.Invocation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls = append(l.Calls, inv)
	return l.Err
}

// HarnessResult holds the outcomes of a system test run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	Launcher  *RecordingLauncher
}

// Result is one entry of the app's JSON report.
type Result struct {
	Name        string             `json:"name"`
	Project     string             `json:"project"`
	DuplicateOf string             `json:"duplicate_of"`
	Arguments   map[string]any     `json:"arguments"`
	Command     *launch.Invocation `json:"command"`
}

// Results decodes the JSON report printed by a run with Format "json".
func (r *HarnessResult) Results(t *testing.T) []Result {
	t.Helper()
	var results []Result
	require.NoError(t, json.Unmarshal([]byte(r.Output), &results), "output was:\n%s", r.Output)
	return results
}

// WriteFiles creates the given files, keyed by slash-separated relative path,
// under a fresh temporary directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return dir
}

// RunIntegrationTest writes files, points cfg at the resulting directory when
// it names no settings paths, and runs the app with a recording launcher.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithLauncher(t, files, cfg, &RecordingLauncher{})
}

// RunIntegrationTestWithLauncher is RunIntegrationTest with a caller-provided
// launcher, for tests that need launches to fail.
func RunIntegrationTestWithLauncher(t *testing.T, files map[string]string, cfg app.Config, launcher *RecordingLauncher) *HarnessResult {
	t.Helper()

	dir := WriteFiles(t, files)
	if len(cfg.SettingsPaths) == 0 {
		cfg.SettingsPaths = []string{dir}
	} else {
		for i, p := range cfg.SettingsPaths {
			cfg.SettingsPaths[i] = filepath.Join(dir, filepath.FromSlash(p))
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	result := &HarnessResult{Dir: dir, Launcher: launcher}
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	testApp, err := app.NewApp(out, logs, appConfig, app.WithLauncher(result.Launcher))
	require.NoError(t, err)

	result.Err = testApp.Run(context.Background())
	result.Output = out.String()
	result.LogOutput = logs.String()

	if os.Getenv("GRADLERUN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}
