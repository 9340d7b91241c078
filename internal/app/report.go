package app

import (
	"encoding/json"
	"fmt"

	"github.com/vk/gradlerun/internal/launch"
)

// report prints the resolved runs in the configured format.
func (a *App) report(results []*resolvedRun) error {
	if a.config.Format == "json" {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(a.outW)
		}
		fmt.Fprintf(a.outW, "Run: %s (project %s)\n", r.Name, r.Project)
		if r.DuplicateOf != "" {
			fmt.Fprintf(a.outW, "Same configuration as: %s\n", r.DuplicateOf)
		}
		if err := launch.Describe(a.outW, r.Arguments); err != nil {
			return err
		}
		if p := r.Command.Provision; p != nil {
			fmt.Fprintf(a.outW, "Provision: %s (in %s)\n", p, p.Dir)
		}
		if _, err := fmt.Fprintf(a.outW, "Command: %s\n", r.Command); err != nil {
			return err
		}
	}
	return nil
}
