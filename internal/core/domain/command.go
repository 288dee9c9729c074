package domain

import "time"

// Command describes a process invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string
	// Env overrides variables of the inherited environment.
	Env map[string]string
	// Timeout bounds the process run time. Zero disables the bound.
	Timeout time.Duration
}

// CommandResult holds the captured streams of a finished process.
type CommandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}
