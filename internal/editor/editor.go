// Package editor launches the user's text editor on a dashboard document.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/thoreinstein/motd/internal/errors"
)

// Streams are the terminal handles handed to the editor.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Stdio returns the process's own terminal handles.
func Stdio() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Open runs the editor on path and waits for it to exit.
func Open(ctx context.Context, path string, s Streams) error {
	name, args := Command()

	cmd := exec.CommandContext(ctx, name, append(args, path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

// Command returns the editor program and its leading arguments.
// $EDITOR and $VISUAL are split with shell quoting rules, so they may carry
// flags and quoted paths, as in EDITOR="code --wait".
func Command() (string, []string) {
	raw := detectEditor()
	words, err := shellquote.Split(raw)
	if err != nil || len(words) == 0 {
		return raw, nil
	}
	return words[0], words[1:]
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}

	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
