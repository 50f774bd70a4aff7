package component

import (
	"fmt"
	"io"
)

// RenderLastRun prints the current time in the configured layout.
func RenderLastRun(w io.Writer, env *Env) error {
	_, err := fmt.Fprintf(w, "Last updated: %s\n", env.Now().Format(env.Settings.TimeFormat))
	return err
}
