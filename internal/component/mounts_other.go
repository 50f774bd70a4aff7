//go:build !linux

package component

// SystemMounts returns the mount table of the running system.
func SystemMounts() ([]Mount, error) {
	return nil, ErrMountsUnsupported
}
