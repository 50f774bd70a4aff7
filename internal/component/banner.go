package component

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/section"
)

// RenderBanner runs the banner command through sh and prints its output in
// the banner color.
func RenderBanner(ctx context.Context, w io.Writer, env *Env, b section.Banner) error {
	out, err := env.run(ctx, "sh", "-c", b.Command)
	if err != nil {
		return errors.Wrap(err, "banner command")
	}

	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, env.paint(text, attribute(b.Color)))
	return err
}
