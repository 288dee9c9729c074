package domain

// RebuildStatus is the state of a stylesheet rebuild.
type RebuildStatus uint8

const (
	// RebuildStarted is reported before the compiler runs.
	RebuildStarted RebuildStatus = iota
	// RebuildCompleted is reported once the output file is written.
	RebuildCompleted
	// RebuildFailed is reported when the compiler or the write failed.
	RebuildFailed
)

// RebuildEvent reports the progress of one stylesheet rebuild.
type RebuildEvent struct {
	Source string
	Output string
	Status RebuildStatus
	Err    error
}
