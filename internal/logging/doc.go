// Package logging provides structured logging for the motd CLI using slog.
//
// Loggers write either TTY-friendly colored text or JSON. The CLI derives the
// level from -v/-q, may fan out to a JSON log file through [MultiHandler],
// and stores the logger on the command context ([NewContext], [FromContext]).
//
// The decoding packages never log; only the CLI and the section renderers do.
//
//	logger := logging.New(logging.Config{Level: slog.LevelInfo})
//	logger.Info("rendered dashboard", "sections", 4)
//
// For tests, [ForTest] routes output through t.Log.
package logging
