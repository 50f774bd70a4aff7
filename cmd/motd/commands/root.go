// Package commands implements the CLI commands for motd.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/motd/internal/config"
	"github.com/thoreinstein/motd/internal/errors"
	"github.com/thoreinstein/motd/internal/logging"
	"github.com/thoreinstein/motd/internal/paths"
)

// documentFlag holds the value of the --config flag.
var documentFlag string

// settingsFlag holds the value of the --settings flag.
var settingsFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// logOutput is the open --log-file handle, closed by closeLogFile.
var logOutput *os.File

// settings holds the loaded settings; nil until initSettings runs.
var settings *config.Settings

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)
	cobra.OnFinalize(closeLogFile)

	rootCmd.PersistentFlags().StringVarP(&documentFlag, "config", "c", "",
		"dashboard document (default: config.toml or config.yaml in "+paths.ConfigDir()+")")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "",
		"settings file (default: settings.yaml in the config directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Flags().BoolVar(&showPick, "pick", false, "choose sections interactively")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings, settingsLoadErr = config.Load(settingsFlag)
}

func closeLogFile() {
	if logOutput == nil {
		return
	}
	if err := logOutput.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log file: %v\n", err)
	}
	logOutput = nil
}

// currentSettings returns the loaded settings, or defaults before loading.
func currentSettings() *config.Settings {
	if settings == nil {
		return config.Default()
	}
	return settings
}

var rootCmd = &cobra.Command{
	Use:   "motd",
	Short: "Render a message-of-the-day dashboard",
	Long: `motd renders a terminal dashboard from a TOML or YAML document.

Each top-level key in the document is a section (banner, docker,
filesystems, last_login, last_run). Sections are drawn in the order they
are written, so reordering the document reorders the dashboard.

Running motd with no subcommand is the same as "motd show".`,
	Example: `  # Create a starter document
  motd init

  # Draw the dashboard
  motd

  # Validate the document and list its sections
  motd check --strict

  See Also: motd show, motd check, motd init`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd)
	},
	RunE: runShow,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pick one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MOTD_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		closeLogFile()
		logOutput = f
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings reports a settings load failure for every command that
// depends on settings.
func checkSettings(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if settingsLoadErr != nil {
		return errors.NewUserError(
			errors.Wrap(settingsLoadErr, "loading settings"),
			"Check "+paths.SettingsName+".yaml in "+paths.ConfigDir(),
		)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the CLI and returns the process exit code. Errors are written
// to stderr with their suggestion, if any.
func Main(stderr io.Writer) int {
	err := Execute()
	reportError(stderr, err)
	return errors.Code(err)
}

func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(w, exitErr.Suggestion)
	}
}
