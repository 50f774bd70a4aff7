package component

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/motd/internal/config"
	"github.com/thoreinstein/motd/internal/logging"
)

// fakeCommander returns canned output keyed by the full command line.
type fakeCommander struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeCommander) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	if err, ok := f.errs[line]; ok {
		return nil, err
	}
	out, ok := f.outputs[line]
	if !ok {
		return nil, fmt.Errorf("unexpected command %q", line)
	}
	return []byte(out), nil
}

var fixedNow = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

func testEnv(t *testing.T, cmd *fakeCommander) *Env {
	t.Helper()
	if cmd == nil {
		cmd = &fakeCommander{}
	}
	s := config.Default()
	s.ProgressFullCharacter = "#"
	s.ProgressEmptyCharacter = "."
	return &Env{
		Settings:  s,
		Commander: cmd,
		Now:       func() time.Time { return fixedNow },
		Mounts:    func() ([]Mount, error) { return nil, nil },
		Usage: func(path string) (Usage, error) {
			return Usage{}, fmt.Errorf("no usage for %s", path)
		},
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewContext(context.Background(), logging.ForTest(t))
}
