package source

import (
	"context"
	"os/exec"
)

// commandRunner executes name with args and returns combined output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

var runCommand commandRunner = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// SetCommandRunnerForTests overrides the git runner during tests.
func SetCommandRunnerForTests(fn func(context.Context, string, ...string) ([]byte, error)) func() {
	previous := runCommand
	runCommand = fn
	return func() {
		runCommand = previous
	}
}
