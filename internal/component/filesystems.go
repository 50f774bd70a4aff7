package component

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/logging"
	"github.com/thoreinstein/motd/internal/section"
)

// ErrEmptyFilesystems is returned for a filesystems section with no entries.
var ErrEmptyFilesystems = errors.New("filesystems section is empty; remove the block to disable it")

// MountNotFoundError reports a configured mount point that is not mounted.
type MountNotFoundError struct {
	MountPoint string
}

func (e *MountNotFoundError) Error() string {
	return fmt.Sprintf("could not find mount %q", e.MountPoint)
}

// Usage thresholds, in whole percent, for bar colors.
const (
	warnPercent     = 75
	criticalPercent = 95
)

var fsHeader = []string{"Filesystems", "Device", "Mount", "Type", "Used", "Total"}

type fsEntry struct {
	name  string
	mount Mount
	usage Usage
}

func (e fsEntry) cells() []string {
	return []string{
		strings.Repeat(" ", Indent) + e.name,
		e.mount.Device,
		e.mount.MountPoint,
		e.mount.Type,
		humanize.Bytes(e.usage.Used()),
		humanize.Bytes(e.usage.Total),
	}
}

// RenderFilesystems prints a usage table with one bar per filesystem,
// sorted by display name. Bars span the table unless progress_width is set.
func RenderFilesystems(ctx context.Context, w io.Writer, env *Env, f section.Filesystems) error {
	if len(f) == 0 {
		return ErrEmptyFilesystems
	}

	mounts, err := env.Mounts()
	if err != nil {
		return err
	}
	byPoint := make(map[string]Mount, len(mounts))
	for _, m := range mounts {
		// Later rows shadow earlier ones mounted at the same point.
		byPoint[m.MountPoint] = m
	}

	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]fsEntry, 0, len(names))
	for _, name := range names {
		point := filepath.Clean(f[name])
		m, ok := byPoint[point]
		if !ok {
			return &MountNotFoundError{MountPoint: f[name]}
		}
		usage, err := env.Usage(m.MountPoint)
		if err != nil {
			return err
		}
		entries = append(entries, fsEntry{name: name, mount: m, usage: usage})
	}

	widths := make([]int, len(fsHeader))
	for _, row := range append([][]string{fsHeader}, rowsOf(entries)...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	if err := writeRow(w, fsHeader, widths); err != nil {
		return err
	}

	s := env.Settings
	barWidth := s.ProgressWidth
	if barWidth == 0 {
		// The bar line is indented, so it spans all gaps but one.
		for _, n := range widths {
			barWidth += n
		}
		barWidth += (len(widths)-2)*Indent -
			runewidth.StringWidth(s.ProgressPrefix) -
			runewidth.StringWidth(s.ProgressSuffix)
	}
	barWidth = max(barWidth, 1)

	for _, e := range entries {
		if err := writeRow(w, e.cells(), widths); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Repeat(" ", Indent)+bar(env, e.usage.Ratio(), barWidth)); err != nil {
			return err
		}
		if e.mount.Type != "btrfs" {
			continue
		}
		if line, ok := scrubStatus(ctx, env, e.mount.MountPoint); ok {
			if _, err := fmt.Fprintln(w, strings.Repeat(" ", Indent)+line); err != nil {
				return err
			}
		}
	}
	return nil
}

func rowsOf(entries []fsEntry) [][]string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = e.cells()
	}
	return rows
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", Indent))
		}
		b.WriteString(runewidth.FillRight(cell, widths[i]))
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	return err
}

// bar draws a usage bar width cells wide between the configured prefix and
// suffix.
func bar(env *Env, ratio float64, width int) string {
	full := min(int(float64(width)*ratio), width)
	s := env.Settings
	return s.ProgressPrefix +
		env.paint(strings.Repeat(s.ProgressFullCharacter, full), usageColor(ratio)) +
		env.paint(strings.Repeat(s.ProgressEmptyCharacter, width-full), color.FgHiBlack) +
		s.ProgressSuffix
}

func usageColor(ratio float64) color.Attribute {
	switch pct := int(ratio * 100); {
	case pct <= warnPercent:
		return color.FgGreen
	case pct <= criticalPercent:
		return color.FgYellow
	default:
		return color.FgRed
	}
}

// scrubStatus summarizes `btrfs scrub status` for a mount. It reports false
// when the status cannot be read, which is common without root.
func scrubStatus(ctx context.Context, env *Env, mountPoint string) (string, bool) {
	out, err := env.run(ctx, "sudo", "-n", "btrfs", "scrub", "status", mountPoint)
	if err != nil {
		logging.FromContext(ctx).Debug("btrfs scrub status unavailable", "mount", mountPoint, "error", err)
		return "", false
	}

	fields := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		k, v, ok := strings.Cut(sc.Text(), ":")
		if ok {
			fields[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	status, ok := fields["Status"]
	if !ok {
		return "", false
	}
	switch status {
	case "finished":
		if status, ok = fields["Scrub started"]; !ok {
			return "", false
		}
	case "running":
		status = "in progress..."
	}

	summary, ok := fields["Error summary"]
	if !ok {
		return "", false
	}
	mark := env.paint("✕", color.FgRed)
	if summary == "no errors found" {
		mark = env.paint("✓", color.FgGreen)
	}
	return fmt.Sprintf("Last scrub: %s (%s)", status, mark), true
}
