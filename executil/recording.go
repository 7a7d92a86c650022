package executil

import (
	"context"
	"strings"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// Line returns the command and its arguments joined by spaces.
func (c RecordedCommand) Line() string {
	return strings.TrimSpace(c.Cmd + " " + strings.Join(c.Args, " "))
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps a full command line (e.g. "gsettings get a b") or a bare
	// command name to its output. The full line wins.
	Outputs map[string][]byte

	// Errors maps a full command line or command name to its error.
	Errors map[string]error
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rc := RecordedCommand{Cmd: cmd, Args: args}
	e.Commands = append(e.Commands, rc)

	return lookup(e.Outputs, rc), lookup(e.Errors, rc)
}

// Lines returns every recorded command line in order.
func (e *RecordingExecutor) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, len(e.Commands))
	for i, c := range e.Commands {
		out[i] = c.Line()
	}
	return out
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}

func lookup[V any](m map[string]V, rc RecordedCommand) V {
	var zero V
	if m == nil {
		return zero
	}
	if v, ok := m[rc.Line()]; ok {
		return v
	}
	if v, ok := m[rc.Cmd]; ok {
		return v
	}
	return zero
}
