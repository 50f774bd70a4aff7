package component

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/section"
)

// RenderLastLogin prints recent logins for each configured user, sorted by
// user name. Users configured with a count of zero are omitted.
func RenderLastLogin(ctx context.Context, w io.Writer, env *Env, l section.LastLogin) error {
	users := make([]string, 0, len(l))
	for user, n := range l {
		if n > 0 {
			users = append(users, user)
		}
	}
	slices.Sort(users)

	if _, err := fmt.Fprintln(w, "Last Login:"); err != nil {
		return err
	}
	indent := strings.Repeat(" ", Indent)
	for _, user := range users {
		out, err := env.run(ctx, "last", "-n", strconv.Itoa(l[user]), user)
		if err != nil {
			return errors.Wrapf(err, "last logins for %s", user)
		}

		if _, err := fmt.Fprintf(w, "%s%s:\n", indent, user); err != nil {
			return err
		}
		for _, line := range loginLines(out) {
			if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, indent, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// loginLines drops blank lines and the trailing "wtmp begins" note.
func loginLines(out []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "wtmp begins") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
