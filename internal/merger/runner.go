package merger

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/prkit/mergepr/pkg/model"
)

// Runner executes a subprocess and reports its captured output and exit
// code. A command that ran but exited non-zero is returned as a result,
// not an error; the error return covers failures to run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (model.CommandResult, error)
}

// execRunner implements Runner with os/exec.
type execRunner struct{}

// NewRunner creates the production subprocess runner.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (model.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := model.CommandResult{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}
