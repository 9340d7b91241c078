package launch

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/vk/gradlerun/internal/distribution"
	"github.com/vk/gradlerun/internal/runconfig"
)

// ErrInvalidArguments is matched by every rejection from Command.
var ErrInvalidArguments = errors.New("invalid gradle arguments")

// Invocation is a ready to run Gradle process description.
type Invocation struct {
	Dir        string     `json:"dir"`
	Executable string     `json:"executable"`
	Args       []string   `json:"args"`
	Env        []string   `json:"env,omitempty"`
	Provision  *Provision `json:"provision,omitempty"`
}

// Provision generates the Gradle wrapper that Executable points to. It is
// run once, in Dir, when Executable does not exist yet.
type Provision struct {
	Dir        string   `json:"dir"`
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
}

// String renders the provisioning step as a shell command line.
func (p *Provision) String() string {
	return shellquote.Join(append([]string{p.Executable}, p.Args...)...)
}

// String renders the invocation as a shell command line.
func (i *Invocation) String() string {
	return shellquote.Join(append([]string{i.Executable}, i.Args...)...)
}

// statFunc is swapped in tests.
type statFunc func(string) (os.FileInfo, error)

// Command builds the invocation for args. Version and remote distributions
// run through a wrapper generated under WrapperCacheDir.
func Command(args runconfig.GradleArguments) (*Invocation, error) {
	return command(args, os.Stat, runtime.GOOS, WrapperCacheDir(args.GradleUserHome))
}

// WrapperCacheDir returns the directory that holds generated wrappers: below
// the Gradle user home when one is set, else below the user cache directory.
func WrapperCacheDir(gradleUserHome string) string {
	if gradleUserHome != "" {
		return filepath.Join(gradleUserHome, "gradlerun", "wrappers")
	}
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "gradlerun", "wrappers")
}

func command(args runconfig.GradleArguments, stat statFunc, goos, cacheDir string) (*Invocation, error) {
	if args.ProjectDir == "" {
		return nil, fmt.Errorf("%w: project directory is empty", ErrInvalidArguments)
	}
	if args.JavaHome != "" {
		info, err := stat(args.JavaHome)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: java home %s does not exist or is not a directory", ErrInvalidArguments, args.JavaHome)
		}
	}

	inv := &Invocation{Dir: args.ProjectDir}

	dist := args.GradleDistribution
	if !dist.IsWrapper() && dist.Location() == "" {
		return nil, fmt.Errorf("%w: %s distribution has no location", ErrInvalidArguments, dist.Kind())
	}
	switch dist.Kind() {
	case distribution.Wrapper:
		inv.Executable = filepath.Join(args.ProjectDir, scriptName("gradlew", goos))
	case distribution.LocalInstallation:
		inv.Executable = filepath.Join(dist.Location(), "bin", scriptName("gradle", goos))
	default:
		p, err := provision(dist, cacheDir, goos)
		if err != nil {
			return nil, err
		}
		inv.Executable = filepath.Join(p.Dir, scriptName("gradlew", goos))
		inv.Provision = p
	}

	inv.Args = append(inv.Args, "--project-dir", args.ProjectDir)
	if args.GradleUserHome != "" {
		inv.Args = append(inv.Args, "--gradle-user-home", args.GradleUserHome)
	}
	if args.OfflineMode {
		inv.Args = append(inv.Args, "--offline")
	}
	if args.BuildScansEnabled {
		inv.Args = append(inv.Args, "--scan")
	}
	if len(args.JvmArguments) > 0 {
		inv.Args = append(inv.Args, "-Dorg.gradle.jvmargs="+shellquote.Join(args.JvmArguments...))
	}
	inv.Args = append(inv.Args, args.Arguments...)
	inv.Args = append(inv.Args, args.Tasks...)

	if args.JavaHome != "" {
		inv.Env = append(inv.Env, "JAVA_HOME="+args.JavaHome)
	}
	return inv, nil
}

// provision describes the wrapper for a version or remote distribution. Each
// distribution gets its own directory, so different selectors never share a
// wrapper.
func provision(dist distribution.Distribution, cacheDir, goos string) (*Provision, error) {
	p := &Provision{Executable: scriptName("gradle", goos), Args: []string{"wrapper"}}
	switch dist.Kind() {
	case distribution.Version:
		v := dist.Location()
		if v == "." || v == ".." || strings.ContainsAny(v, `/\`) {
			return nil, fmt.Errorf("%w: invalid gradle version %q", ErrInvalidArguments, v)
		}
		p.Dir = filepath.Join(cacheDir, "versions", v)
		p.Args = append(p.Args, "--gradle-version", v)
	case distribution.RemoteDistribution:
		sum := sha256.Sum256([]byte(dist.Location()))
		p.Dir = filepath.Join(cacheDir, "remote", hex.EncodeToString(sum[:8]))
		p.Args = append(p.Args, "--gradle-distribution-url", dist.Location())
	default:
		return nil, fmt.Errorf("%w: cannot provision %s distribution", ErrInvalidArguments, dist.Kind())
	}
	return p, nil
}

func scriptName(base, goos string) string {
	if goos == "windows" {
		return base + ".bat"
	}
	return base
}
