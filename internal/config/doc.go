// Package config manages motd's own settings: the knobs that control how the
// dashboard is drawn, as opposed to the dashboard document that says what to
// draw.
//
// Settings are loaded with github.com/spf13/viper from settings.yaml in the
// motd config directory (see package paths) or the working directory, then
// overridden by MOTD_* environment variables (MOTD_TIME_FORMAT,
// MOTD_PROGRESS_WIDTH and so on).
//
//	time_format: "2006-01-02 15:04:05"
//	strict: false
//	command_timeout: 5s
//	progress_full_character: "="
//	progress_empty_character: "="
//	progress_prefix: "["
//	progress_suffix: "]"
//	progress_width: 0   # 0 sizes bars to the filesystem table
//
// A missing settings file is not an error; [Load] falls back to [Default].
package config
