// Package main is the entry point for the dd2scummer CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/SingingTree/darkest-dungeon-2-scummer/cmd/dd2scummer/commands"
	scumerrors "github.com/SingingTree/darkest-dungeon-2-scummer/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *scumerrors.ExitError
	if errors.As(err, &exitErr) {
		// A nil underlying error means the command already reported
		// everything it had to say; only the code matters.
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(scumerrors.ExitUser)
}
