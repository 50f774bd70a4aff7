// Package paths resolves where motd keeps its files.
//
// Locations follow the XDG Base Directory Specification through
// github.com/adrg/xdg:
//
//	| File            | Default location                  |
//	|-----------------|-----------------------------------|
//	| dashboard doc   | $XDG_CONFIG_HOME/motd/config.toml |
//	| settings        | $XDG_CONFIG_HOME/motd/settings.yaml |
//
// MOTD_CONFIG_DIR replaces $XDG_CONFIG_HOME/motd entirely, which is mostly
// useful for tests and for system-wide installs under /etc.
package paths
