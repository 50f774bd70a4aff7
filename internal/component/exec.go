package component

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/thoreinstein/motd/internal/errors"
)

// Commander runs an external program and returns its standard output.
type Commander interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// waitDelay bounds how long Output waits for the output pipes to close
// after the context is done. Descendants that inherited them may outlive
// the killed process group.
const waitDelay = 250 * time.Millisecond

// ExecCommander runs programs with os/exec. Each program runs in its own
// process group, which is killed as a whole when ctx is done.
type ExecCommander struct{}

// Output runs name with args. A non-zero exit is an error that carries the
// program's trimmed stderr.
func (ExecCommander) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	killGroup(cmd)
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.Wrapf(err, "%s: %s", name, msg)
		}
		return nil, errors.Wrapf(err, "running %s", name)
	}
	return out, nil
}
