package launch

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/gradlerun/internal/runconfig"
)

// Describe writes the configuration header shown before a build starts.
func Describe(w io.Writer, args runconfig.GradleArguments) error {
	rows := []struct{ key, value string }{
		{"Working Directory", args.ProjectDir},
		{"Gradle User Home", orDefault(args.GradleUserHome, "Gradle default")},
		{"Gradle Distribution", args.GradleDistribution.DisplayName()},
		{"Java Home", orDefault(args.JavaHome, "Gradle default")},
		{"JVM Arguments", list(args.JvmArguments)},
		{"Program Arguments", list(args.Arguments)},
		{"Build Scans Enabled", fmt.Sprint(args.BuildScansEnabled)},
		{"Offline Mode Enabled", fmt.Sprint(args.OfflineMode)},
		{"Gradle Tasks", list(args.Tasks)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.key, r.value); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func list(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, " ")
}
