// Package deps checks the external programs and paths nbserve relies on.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency nbserve relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
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
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Command = path
		results = append(results, status)
	}
	return results
}

// CheckDirectory reports whether dir exists, is a directory and accepts new files.
func CheckDirectory(name, dir string) Status {
	status := Status{Name: name, Command: dir, Description: "directory"}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			status.Detail = "does not exist (created on first start)"
			status.Optional = true
			return status
		}
		status.Detail = err.Error()
		return status
	}
	if !info.IsDir() {
		status.Detail = "not a directory"
		return status
	}

	probe, err := os.CreateTemp(dir, ".nbserve-probe-*")
	if err != nil {
		status.Detail = fmt.Sprintf("not writable: %v", err)
		return status
	}
	probePath := probe.Name()
	probe.Close()
	os.Remove(probePath)

	status.Available = true
	return status
}

// Healthy reports whether every required dependency is available.
func Healthy(statuses []Status) bool {
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			return false
		}
	}
	return true
}
