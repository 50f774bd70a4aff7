package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/paths"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "MOTD"

// Settings controls rendering.
type Settings struct {
	// Document overrides the dashboard document location.
	Document string `mapstructure:"document"`

	// TimeFormat is a Go reference-time layout used by the last_run section.
	TimeFormat string `mapstructure:"time_format"`

	// Strict rejects unknown and repeated section keys.
	Strict bool `mapstructure:"strict"`

	// CommandTimeout bounds every external command a section runs.
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	// Progress bar drawing for the filesystems section. ProgressWidth 0
	// sizes bars to the width of the filesystem table.
	ProgressFullCharacter  string `mapstructure:"progress_full_character"`
	ProgressEmptyCharacter string `mapstructure:"progress_empty_character"`
	ProgressPrefix         string `mapstructure:"progress_prefix"`
	ProgressSuffix         string `mapstructure:"progress_suffix"`
	ProgressWidth          int    `mapstructure:"progress_width"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		TimeFormat:             "2006-01-02 15:04:05 MST",
		CommandTimeout:         5 * time.Second,
		ProgressFullCharacter:  "=",
		ProgressEmptyCharacter: "=",
		ProgressPrefix:         "[",
		ProgressSuffix:         "]",
	}
}

// newViper builds a viper instance with defaults, search paths and env
// bindings. A fresh instance per Load keeps tests independent.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName(paths.SettingsName)
	v.SetConfigType("yaml")
	v.AddConfigPath(paths.ConfigDir())
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("document", d.Document)
	v.SetDefault("time_format", d.TimeFormat)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("command_timeout", d.CommandTimeout)
	v.SetDefault("progress_full_character", d.ProgressFullCharacter)
	v.SetDefault("progress_empty_character", d.ProgressEmptyCharacter)
	v.SetDefault("progress_prefix", d.ProgressPrefix)
	v.SetDefault("progress_suffix", d.ProgressSuffix)
	v.SetDefault("progress_width", d.ProgressWidth)

	return v
}

// Load reads settings. With an explicit path the file must exist; with an
// empty path the default locations are searched and defaults are used when
// nothing is found.
func Load(path string) (*Settings, error) {
	v := newViper()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(errors.ErrNotFound, "settings file %s", path)
		}
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if errs := Validate(&s); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errors.Join(errs...), "validating settings"), errors.ErrInvalidConfig)
	}

	return &s, nil
}
