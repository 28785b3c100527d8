package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/passgen/internal/passphrase"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Passphrases were produced
	ExitNoCandidates = 1 // Every candidate failed scoring
	ExitError        = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, passphrase.ErrNoCandidates):
		return ExitNoCandidates
	default:
		return ExitError
	}
}
