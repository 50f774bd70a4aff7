// Package errors provides error handling conventions for the motd CLI.
//
// It re-exports the constructors and inspectors of
// [github.com/cockroachdb/errors] so callers need a single import, and
// defines [ExitError], which attaches a process exit code and an optional
// suggestion to an underlying error.
//
// # Exit Codes
//
//   - ExitSuccess (0): the dashboard rendered cleanly
//   - ExitUser (1): the document or settings are wrong
//   - ExitSystem (2): I/O, command execution, or filesystem failures
//
// # ExitError
//
//	err := motderrors.NewUserError(decodeErr, "Run: motd check")
//	var exitErr *motderrors.ExitError
//	if motderrors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
