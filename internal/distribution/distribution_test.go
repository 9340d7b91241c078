package distribution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		expected  Distribution
		expectErr bool
	}{
		{name: "persisted wrapper", input: "GRADLE_DISTRIBUTION(WRAPPER)", expected: FromWrapper()},
		{name: "persisted version", input: "GRADLE_DISTRIBUTION(VERSION(4.9))", expected: ForVersion("4.9")},
		{name: "persisted local", input: "GRADLE_DISTRIBUTION(LOCAL_INSTALLATION(/opt/gradle))", expected: ForLocalInstallation("/opt/gradle")},
		{
			name:     "persisted remote",
			input:    "GRADLE_DISTRIBUTION(REMOTE_DISTRIBUTION(https://services.gradle.org/distributions/gradle-5.0-bin.zip))",
			expected: ForRemoteDistribution("https://services.gradle.org/distributions/gradle-5.0-bin.zip"),
		},
		{name: "shorthand wrapper", input: "Wrapper", expected: FromWrapper()},
		{name: "shorthand version", input: "version:5.0", expected: ForVersion("5.0")},
		{name: "shorthand local", input: "local:/opt/gradle-8.10", expected: ForLocalInstallation("/opt/gradle-8.10")},
		{name: "shorthand remote", input: "remote:https://example.com/g.zip", expected: ForRemoteDistribution("https://example.com/g.zip")},
		{name: "bare uri", input: "https://example.com/g.zip", expected: ForRemoteDistribution("https://example.com/g.zip")},
		{name: "bare version", input: " 8.10.2 ", expected: ForVersion("8.10.2")},
		{name: "release candidate", input: "5.0-rc-1", expected: ForVersion("5.0-rc-1")},
		{name: "error - empty", input: "  ", expectErr: true},
		{name: "error - version without value", input: "version:", expectErr: true},
		{name: "error - remote without value", input: "remote:  ", expectErr: true},
		{name: "persisted version without value", input: "GRADLE_DISTRIBUTION(VERSION())", expected: ForVersion("")},
		{name: "error - unknown persisted kind", input: "GRADLE_DISTRIBUTION(NIGHTLY(1))", expectErr: true},
		{name: "error - garbage", input: "latest", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			actual, err := Parse(tc.input)

			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDistribution))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, d := range []Distribution{
		FromWrapper(),
		ForVersion("4.9"),
		ForLocalInstallation("/opt/gradle"),
		ForRemoteDistribution("https://example.com/gradle-(custom).zip"),
		ForVersion(""),
		ForLocalInstallation(""),
		ForRemoteDistribution(""),
		ForLocalInstallation(" /opt/gradle "),
	} {
		parsed, err := Parse(d.String())
		require.NoError(t, err, d.String())
		assert.Equal(t, d, parsed)
	}
}

func TestZeroValueIsWrapper(t *testing.T) {
	t.Parallel()

	var d Distribution
	assert.True(t, d.IsWrapper())
	assert.Equal(t, FromWrapper(), d)
	assert.Equal(t, "Gradle wrapper", d.DisplayName())
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Gradle 4.9", ForVersion("4.9").DisplayName())
	assert.Equal(t, "Local installation at /opt/gradle", ForLocalInstallation("/opt/gradle").DisplayName())
	assert.Equal(t, "Remote distribution from https://x/g.zip", ForRemoteDistribution("https://x/g.zip").DisplayName())
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	text, err := ForVersion("5.0").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "GRADLE_DISTRIBUTION(VERSION(5.0))", string(text))

	var d Distribution
	require.NoError(t, d.UnmarshalText([]byte("local:/opt/gradle")))
	assert.Equal(t, ForLocalInstallation("/opt/gradle"), d)

	require.Error(t, d.UnmarshalText([]byte("")))
	assert.Equal(t, ForLocalInstallation("/opt/gradle"), d, "failed unmarshal must not modify the receiver")
}
