package model

// CommandResult captures the outcome of a subprocess invocation.
type CommandResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
}

// Success returns true if the command exited with code zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
