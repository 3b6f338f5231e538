// Package main provides the refbook CLI, the presentation layer over the
// earnings data backend.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error: rejected input and missing records are user
// errors; everything else is a system error.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrSeasonEmpty,
		types.ErrNumberEmpty,
		types.ErrNegativeAmount,
		types.ErrInvalidPaidStatus,
		types.ErrInvalidDate,
		types.ErrNotFound,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
