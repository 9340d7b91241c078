package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gradlerun/internal/app"
)

func TestParse_DefaultSettingsPath(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"build"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, []string{app.DefaultSettingsPath}, cfg.SettingsPaths)
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		args       []string
		expected   *app.Config
		shouldExit bool
		errMessage string
	}{
		{
			name: "runs with defaults",
			args: []string{"build", "test"},
			expected: &app.Config{
				Runs:      []string{"build", "test"},
				Format:    "text",
				LogFormat: "text",
				LogLevel:  "warn",
				CacheSize: 128,
			},
		},
		{
			name: "every flag",
			args: []string{
				"-settings", "a.hcl", "-settings", "conf.d",
				"-all", "-exec", "-format", "JSON",
				"-log-format", "json", "-log-level", "DEBUG", "-cache-size", "8",
			},
			expected: &app.Config{
				SettingsPaths: []string{"a.hcl", "conf.d"},
				Runs:          []string{},
				All:           true,
				Execute:       true,
				Format:        "json",
				LogFormat:     "json",
				LogLevel:      "debug",
				CacheSize:     8,
			},
		},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "nothing selected", args: []string{}, shouldExit: true},
		{name: "unknown flag", args: []string{"-nope"}, errMessage: "flag provided but not defined: -nope"},
		{name: "bad format", args: []string{"-format", "xml", "build"}, errMessage: `invalid format "xml"`},
		{name: "bad log format", args: []string{"-log-format", "xml", "build"}, errMessage: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace", "build"}, errMessage: "invalid log-level"},
		{name: "bad cache size", args: []string{"-cache-size", "0", "build"}, errMessage: "invalid cache-size"},
		{name: "empty settings", args: []string{"-settings", "", "build"}, errMessage: "settings path must not be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			if tc.errMessage != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			// NewConfig fills in the defaults the parser leaves unset.
			want, err := app.NewConfig(*tc.expected)
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}
