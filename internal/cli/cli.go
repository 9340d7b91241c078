package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/gradlerun/internal/app"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gradlerun", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gradlerun - Resolve and launch Gradle run configurations.

Usage:
  gradlerun [options] [RUN ...]

Arguments:
  RUN
    Name of a run declared in the settings files. Use -all to select every run.

Options:
`)
		flagSet.PrintDefaults()
	}

	var settingsPaths []string
	flagSet.Func("settings", "Settings file or directory (.hcl, .yaml, .yml). Repeatable; named paths must exist. Default: "+app.DefaultSettingsPath+", skipped when missing", func(v string) error {
		if v == "" {
			return errors.New("settings path must not be empty")
		}
		settingsPaths = append(settingsPaths, v)
		return nil
	})
	allFlag := flagSet.Bool("all", false, "Select every declared run.")
	execFlag := flagSet.Bool("exec", false, "Launch the selected runs instead of printing them.")
	formatFlag := flagSet.String("format", "text", "Output format when printing. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cacheSizeFlag := flagSet.Int("cache-size", 128, "Number of distinct resolved configurations kept for de-duplication. Grows to the number of selected runs.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	runs := flagSet.Args()
	if !*allFlag && len(runs) == 0 {
		slog.Debug("No runs selected, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *cacheSizeFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid cache-size: must be positive"}
	}

	config, err := app.NewConfig(app.Config{
		SettingsPaths: settingsPaths,
		Runs:          runs,
		All:           *allFlag,
		Execute:       *execFlag,
		Format:        strings.ToLower(*formatFlag),
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		CacheSize:     *cacheSizeFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
