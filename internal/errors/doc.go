// Package errors provides exit-code handling for the dd2scummer CLI.
//
// Domain packages define their own sentinel errors; this package only maps
// failures to process exit codes at the command boundary.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User or environment problem (missing save layout,
//     unsupported profile count, bad flags)
//   - ExitSystem (2): System problem (I/O failures, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion. main unwraps it with [errors.As]:
//
//	err := scumerrors.NewUserError(err, "Run: dd2scummer doctor")
//	var exitErr *scumerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
