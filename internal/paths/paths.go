package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/motd/internal/errors"
)

const (
	// AppName is the directory name under the XDG config home.
	AppName = "motd"

	// SettingsName is the settings file name without extension.
	SettingsName = "settings"

	// ConfigDirEnv overrides ConfigDir when set.
	ConfigDirEnv = "MOTD_CONFIG_DIR"
)

// documentNames are probed in order inside a config directory.
var documentNames = []string{"config.toml", "config.yaml", "config.yml"}

// DefaultDirPerm is the permission for newly created config directories.
const DefaultDirPerm = 0o755

// ConfigDir returns the motd configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultDocumentPath is where `motd init` writes a new document of the
// given extension ("toml" or "yaml").
func DefaultDocumentPath(ext string) string {
	if ext == "" {
		ext = "toml"
	}
	return filepath.Join(ConfigDir(), "config."+ext)
}

// FindDocument locates an existing dashboard document. The user config
// directory is searched first, then the system XDG config directories.
func FindDocument() (string, error) {
	dir := ConfigDir()
	for _, name := range documentNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, nil
		}
	}

	if os.Getenv(ConfigDirEnv) == "" {
		for _, name := range documentNames {
			if p, err := xdg.SearchConfigFile(filepath.Join(AppName, name)); err == nil {
				return p, nil
			}
		}
	}

	return "", errors.Wrapf(errors.ErrNotFound, "no dashboard document in %s", dir)
}

// EnsureDir creates path and its parents. It is a no-op when path exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DefaultDirPerm); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return nil
}
