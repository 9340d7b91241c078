package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/vk/gradlerun/internal/ctxlog"
)

// Runner executes invocations as child processes.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts inv and waits for it. Cancelling ctx kills the process. A
// missing wrapper is provisioned first.
func (r *Runner) Run(ctx context.Context, inv *Invocation) error {
	logger := ctxlog.FromContext(ctx)

	if inv.Provision != nil {
		if err := r.provision(ctx, inv); err != nil {
			return err
		}
	}

	logger.Info("Launching Gradle.", "dir", inv.Dir, "command", inv.String())
	if err := r.start(ctx, inv.Dir, inv.Executable, inv.Args, inv.Env); err != nil {
		return fmt.Errorf("gradle invocation failed: %w", err)
	}
	logger.Debug("Gradle finished.", "dir", inv.Dir)
	return nil
}

// provision generates the wrapper in an otherwise empty build so that the
// gradle on PATH accepts the directory.
func (r *Runner) provision(ctx context.Context, inv *Invocation) error {
	logger := ctxlog.FromContext(ctx)
	p := inv.Provision

	if _, err := os.Stat(inv.Executable); err == nil {
		logger.Debug("Wrapper already provisioned.", "dir", p.Dir)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check wrapper %s: %w", inv.Executable, err)
	}

	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create wrapper directory: %w", err)
	}
	settings := filepath.Join(p.Dir, "settings.gradle")
	if _, err := os.Stat(settings); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(settings, nil, 0o644); err != nil {
			return fmt.Errorf("failed to create wrapper directory: %w", err)
		}
	}

	logger.Info("Provisioning Gradle wrapper.", "dir", p.Dir, "command", p.String())
	if err := r.start(ctx, p.Dir, p.Executable, p.Args, nil); err != nil {
		return fmt.Errorf("gradle wrapper provisioning failed: %w", err)
	}
	if _, err := os.Stat(inv.Executable); err != nil {
		return fmt.Errorf("gradle wrapper provisioning did not create %s: %w", inv.Executable, err)
	}
	return nil
}

func (r *Runner) start(ctx context.Context, dir, executable string, args, env []string) error {
	cmd := exec.CommandContext(ctx, executable, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
