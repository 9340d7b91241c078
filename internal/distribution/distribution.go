// Package distribution identifies which Gradle distribution a build is
// executed with: the project's wrapper, a local installation, a remote
// distribution archive or a specific released version.
package distribution

import (
	"errors"
	"fmt"
	"strings"
)

// Kind enumerates the supported distribution sources.
type Kind int

const (
	// Wrapper uses the distribution declared by the project's Gradle wrapper.
	Wrapper Kind = iota
	// LocalInstallation uses a Gradle installation directory on disk.
	LocalInstallation
	// RemoteDistribution downloads the distribution archive from a URI.
	RemoteDistribution
	// Version uses a specific released Gradle version.
	Version
)

// String returns the persisted token of the kind.
func (k Kind) String() string {
	switch k {
	case Wrapper:
		return "WRAPPER"
	case LocalInstallation:
		return "LOCAL_INSTALLATION"
	case RemoteDistribution:
		return "REMOTE_DISTRIBUTION"
	case Version:
		return "VERSION"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrInvalidDistribution is returned by Parse for selectors that cannot name
// a distribution at all.
var ErrInvalidDistribution = errors.New("invalid gradle distribution")

const (
	persistedPrefix = "GRADLE_DISTRIBUTION("
	persistedSuffix = ")"
)

// Distribution is an immutable distribution selector. The zero value selects
// the wrapper. Distributions are comparable with ==.
type Distribution struct {
	kind     Kind
	location string
}

// FromWrapper returns the wrapper distribution.
func FromWrapper() Distribution {
	return Distribution{kind: Wrapper}
}

// ForLocalInstallation returns a distribution backed by the installation in dir.
func ForLocalInstallation(dir string) Distribution {
	return Distribution{kind: LocalInstallation, location: dir}
}

// ForRemoteDistribution returns a distribution downloaded from uri. The uri
// is not validated; a malformed one fails when the build is launched.
func ForRemoteDistribution(uri string) Distribution {
	return Distribution{kind: RemoteDistribution, location: uri}
}

// ForVersion returns the released distribution with the given version.
func ForVersion(version string) Distribution {
	return Distribution{kind: Version, location: version}
}

// Kind reports the distribution source.
func (d Distribution) Kind() Kind { return d.kind }

// Location returns the directory, uri or version of the distribution, or ""
// for the wrapper.
func (d Distribution) Location() string { return d.location }

// IsWrapper reports whether the project's wrapper is selected.
func (d Distribution) IsWrapper() bool { return d.kind == Wrapper }

// String renders the persisted form accepted by Parse, for example
// GRADLE_DISTRIBUTION(VERSION(4.9)).
func (d Distribution) String() string {
	if d.kind == Wrapper {
		return persistedPrefix + d.kind.String() + persistedSuffix
	}
	return persistedPrefix + d.kind.String() + "(" + d.location + ")" + persistedSuffix
}

// DisplayName returns a short human readable description.
func (d Distribution) DisplayName() string {
	switch d.kind {
	case LocalInstallation:
		return "Local installation at " + d.location
	case RemoteDistribution:
		return "Remote distribution from " + d.location
	case Version:
		return "Gradle " + d.location
	default:
		return "Gradle wrapper"
	}
}

// MarshalText implements encoding.TextMarshaler using the persisted form.
func (d Distribution) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting everything
// Parse accepts.
func (d *Distribution) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse reads a distribution selector. It accepts the persisted form
// produced by String, the shorthands "wrapper", "version:<v>",
// "local:<dir>" and "remote:<uri>", and a bare version such as "4.9".
// Shorthands require a non-empty value.
// An empty selector is an error; callers apply their own default.
func Parse(s string) (Distribution, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Distribution{}, fmt.Errorf("%w: empty selector", ErrInvalidDistribution)
	}

	if strings.HasPrefix(s, persistedPrefix) && strings.HasSuffix(s, persistedSuffix) {
		return parsePersisted(strings.TrimSuffix(strings.TrimPrefix(s, persistedPrefix), persistedSuffix))
	}

	if strings.EqualFold(s, "wrapper") {
		return FromWrapper(), nil
	}

	if prefix, rest, ok := strings.Cut(s, ":"); ok {
		switch strings.ToLower(prefix) {
		case "version":
			return nonEmpty(Version, rest)
		case "local":
			return nonEmpty(LocalInstallation, rest)
		case "remote":
			return nonEmpty(RemoteDistribution, rest)
		case "http", "https", "file":
			return ForRemoteDistribution(s), nil
		}
	}

	if looksLikeVersion(s) {
		return ForVersion(s), nil
	}
	return Distribution{}, fmt.Errorf("%w: unrecognized selector %q", ErrInvalidDistribution, s)
}

// parsePersisted parses the body of GRADLE_DISTRIBUTION(...). The location
// is taken verbatim, even when empty, so that Parse(d.String()) == d for
// every d. Launching rejects a distribution without a location.
func parsePersisted(body string) (Distribution, error) {
	if body == Wrapper.String() {
		return FromWrapper(), nil
	}
	for _, k := range []Kind{LocalInstallation, RemoteDistribution, Version} {
		open := k.String() + "("
		if strings.HasPrefix(body, open) && strings.HasSuffix(body, ")") {
			return Distribution{kind: k, location: strings.TrimSuffix(strings.TrimPrefix(body, open), ")")}, nil
		}
	}
	return Distribution{}, fmt.Errorf("%w: unknown kind in %q", ErrInvalidDistribution, body)
}

func nonEmpty(k Kind, location string) (Distribution, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Distribution{}, fmt.Errorf("%w: %s requires a value", ErrInvalidDistribution, k)
	}
	return Distribution{kind: k, location: location}, nil
}

// looksLikeVersion accepts strings such as 4.9, 5.0-rc-1 or 8.10.2.
func looksLikeVersion(s string) bool {
	if s[0] < '0' || s[0] > '9' {
		return false
	}
	return strings.Contains(s, ".") && !strings.ContainsAny(s, " /\\")
}
