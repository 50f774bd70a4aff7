//go:build !(linux || darwin || freebsd)

package component

import "github.com/thoreinstein/motd/internal/errors"

// StatUsage reports the size of the filesystem mounted at path.
func StatUsage(path string) (Usage, error) {
	return Usage{}, errors.Newf("statfs %s: not supported on this platform", path)
}
