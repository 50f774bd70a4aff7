package component

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/thoreinstein/motd/internal/errors"
)

// ErrMountsUnsupported is returned by SystemMounts where no mount table
// can be read.
var ErrMountsUnsupported = errors.New("reading the mount table is not supported on this platform")

// Mount is one row of the mount table.
type Mount struct {
	Device     string
	MountPoint string
	Type       string
}

// Usage is the size of a mounted filesystem in bytes.
type Usage struct {
	Total uint64
	Avail uint64
}

// Used returns the bytes not available to unprivileged users.
func (u Usage) Used() uint64 {
	if u.Avail > u.Total {
		return 0
	}
	return u.Total - u.Avail
}

// Ratio returns Used/Total, or 0 for an empty filesystem.
func (u Usage) Ratio() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used()) / float64(u.Total)
}

// ParseMounts reads a mounts(5) table. Octal escapes in the device and
// mount point fields are decoded.
func ParseMounts(r io.Reader) ([]Mount, error) {
	var mounts []Mount
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		mounts = append(mounts, Mount{
			Device:     unescapeMount(fields[0]),
			MountPoint: unescapeMount(fields[1]),
			Type:       fields[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading mount table")
	}
	return mounts, nil
}

// unescapeMount decodes the \ooo escapes the kernel uses for spaces, tabs,
// newlines and backslashes.
func unescapeMount(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
