package component

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/section"
)

// dockerFormat asks docker ps for one tab-separated name/status pair per line.
const dockerFormat = "{{.Names}}\t{{.Status}}"

// RenderDocker prints the status of each configured container, sorted by
// container name. Running containers are green; stopped or missing ones red.
func RenderDocker(ctx context.Context, w io.Writer, env *Env, d section.Docker) error {
	out, err := env.run(ctx, "docker", "ps", "--all", "--format", dockerFormat)
	if err != nil {
		return errors.Wrap(err, "listing containers")
	}
	statuses := parseDockerPS(out)

	names := make([]string, 0, len(d))
	width := 0
	for name, label := range d {
		names = append(names, name)
		width = max(width, runewidth.StringWidth(label))
	}
	slices.Sort(names)

	if _, err := fmt.Fprintln(w, "Docker:"); err != nil {
		return err
	}
	for _, name := range names {
		label := d[name]
		status, ok := statuses[strings.TrimPrefix(name, "/")]

		var line string
		switch {
		case !ok:
			line = env.paint("not found", color.FgRed)
		case strings.HasPrefix(status, "Up"):
			line = env.paint(status, color.FgGreen)
		default:
			line = env.paint(status, color.FgRed)
		}

		pad := strings.Repeat(" ", width-runewidth.StringWidth(label))
		if _, err := fmt.Fprintf(w, "%s%s:%s %s\n", strings.Repeat(" ", Indent), label, pad, line); err != nil {
			return err
		}
	}
	return nil
}

// parseDockerPS maps container names to status strings.
func parseDockerPS(out []byte) map[string]string {
	statuses := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		name, status, ok := strings.Cut(sc.Text(), "\t")
		if !ok {
			continue
		}
		statuses[strings.TrimPrefix(strings.TrimSpace(name), "/")] = strings.TrimSpace(status)
	}
	return statuses
}
