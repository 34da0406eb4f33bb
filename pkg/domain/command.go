package domain

// Invocation is a request to run an allow-listed external command.
type Invocation struct {
	Name string   // Registry name of the command
	Args []string // Appended after the registered default args
	Dir  string   // Working directory; empty means the runner default
}

// InvocationResult is the captured outcome of an Invocation.
type InvocationResult struct {
	Name     string `json:"name"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exit_code"`
}
