// Package logging provides structured logging for the dd2scummer CLI using slog.
//
// The package supports both text and JSON output formats, verbosity-driven
// log levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("scumming save", "profile", profileDir)
//
// # Verbosity
//
// Repeated -v flags map onto levels through [LevelFromVerbosity]: the
// default shows warnings and errors, -v adds info, -vv adds debug, and
// -vvv enables [LevelTrace].
//
// # Log Files
//
// [NewWithFile] mirrors console output into an append-only JSON log file
// via [MultiHandler], keeping a machine-readable record of every run.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
