package component

import (
	"os"

	"github.com/thoreinstein/motd/internal/errors"
)

const procMounts = "/proc/self/mounts"

// SystemMounts returns the mount table of the running system.
func SystemMounts() ([]Mount, error) {
	f, err := os.Open(procMounts)
	if err != nil {
		return nil, errors.Wrap(err, "opening mount table")
	}
	defer f.Close()
	return ParseMounts(f)
}
