package component

import (
	"context"
	"io"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/section"
)

// Render draws one section value.
func Render(ctx context.Context, w io.Writer, env *Env, v section.Value) error {
	switch v := v.(type) {
	case section.Banner:
		return RenderBanner(ctx, w, env, v)
	case section.Docker:
		return RenderDocker(ctx, w, env, v)
	case section.LastLogin:
		return RenderLastLogin(ctx, w, env, v)
	case section.LastRun:
		return RenderLastRun(w, env)
	case section.Filesystems:
		return RenderFilesystems(ctx, w, env, v)
	default:
		return errors.Newf("no renderer for %T", v)
	}
}
