package component

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"

	"github.com/thoreinstein/motd/internal/config"
	"github.com/thoreinstein/motd/internal/logging"
	"github.com/thoreinstein/motd/internal/section"
)

// Indent is the number of spaces before nested lines.
const Indent = 2

// Env is everything a renderer may touch outside its own arguments.
type Env struct {
	Settings  *config.Settings
	Commander Commander
	Now       func() time.Time
	Mounts    func() ([]Mount, error)
	Usage     func(path string) (Usage, error)

	// Color enables ANSI escapes in rendered output.
	Color bool
}

// NewEnv returns an Env wired to the real system.
func NewEnv(s *config.Settings, useColor bool) *Env {
	if s == nil {
		s = config.Default()
	}
	return &Env{
		Settings:  s,
		Commander: ExecCommander{},
		Now:       time.Now,
		Mounts:    SystemMounts,
		Usage:     StatUsage,
		Color:     useColor,
	}
}

// run executes a command bounded by the configured timeout.
func (e *Env) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logging.FromContext(ctx).Debug("running command",
		"cmd", shellquote.Join(append([]string{name}, args...)...))

	ctx, cancel := context.WithTimeout(ctx, e.Settings.Timeout())
	defer cancel()
	return e.Commander.Output(ctx, name, args...)
}

func (e *Env) paint(s string, attrs ...color.Attribute) string {
	if !e.Color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// attribute maps a banner color to its foreground attribute. The normal and
// light halves of section.Color line up with FgBlack..FgWhite and
// FgHiBlack..FgHiWhite.
func attribute(c section.Color) color.Attribute {
	if c.Light() {
		return color.FgHiBlack + color.Attribute(c-section.ColorLightBlack)
	}
	return color.FgBlack + color.Attribute(c)
}
