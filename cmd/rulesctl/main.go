// Package main provides rulesctl, a command-line front end to the rules engine
// that prints results in the JSON shapes the HTTP boundary uses.
package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/codec"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		_ = codec.Encode(os.Stderr, codec.FromError(err))
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for caller mistakes and 1 for everything else.
func exitCode(err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		return 2
	}
	status := codec.StatusFor(err)
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return 2
	}
	return 1
}

type usageError struct{ error }

func (u usageError) Unwrap() error { return u.error }
