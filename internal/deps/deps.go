// Package deps reports availability of the external encoder binaries.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"pixpress/internal/config"
)

// Requirement defines an external binary pixpress shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the encoder binaries the configuration points at.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "WebP encoder",
			Command:     cfg.WebP.Binary,
			Description: "produces .webp derivatives",
		},
		{
			Name:        "AVIF encoder",
			Command:     cfg.AVIF.Binary,
			Description: "produces .avif derivatives",
		},
	}
}

// Check evaluates the provided requirements and reports availability. A
// missing binary is reported, not fatal: the per-file encoder invocation
// surfaces the actual failure.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: req.Description,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
