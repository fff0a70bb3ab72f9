package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"eplotdb/internal/config"
)

// Requirement defines an external binary eplotdb relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// Requirements lists the binaries the configuration needs. Git is only
// mandatory when the posts repository is synced.
func Requirements(cfg *config.Config) []Requirement {
	gitCommand := "git"
	sync := false
	if cfg != nil {
		if strings.TrimSpace(cfg.Source.GitBinary) != "" {
			gitCommand = cfg.Source.GitBinary
		}
		sync = cfg.Source.Sync && strings.TrimSpace(cfg.Source.ContentDir) == ""
	}
	return []Requirement{
		{
			Name:        "Git",
			Command:     gitCommand,
			Description: "Clones and updates the posts repository",
			Optional:    !sync,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		if resolved != cmd {
			status.Detail = resolved
		}
		results = append(results, status)
	}
	return results
}

// Missing returns the mandatory requirements that are unavailable.
func Missing(statuses []Status) []Status {
	var out []Status
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			out = append(out, status)
		}
	}
	return out
}
