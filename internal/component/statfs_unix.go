//go:build linux || darwin || freebsd

package component

import (
	"golang.org/x/sys/unix"

	"github.com/thoreinstein/motd/internal/errors"
)

// StatUsage reports the size of the filesystem mounted at path.
func StatUsage(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, errors.Wrapf(err, "statfs %s", path)
	}
	bsize := uint64(st.Bsize)
	return Usage{
		Total: uint64(st.Blocks) * bsize,
		Avail: uint64(st.Bavail) * bsize,
	}, nil
}
