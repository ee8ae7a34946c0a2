package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/smasher164/untyped/eval"
)

const (
	exitFailure   = 1
	exitUsage     = 2
	exitStepLimit = 3
)

// usageError marks problems with the command line or configuration.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var uerr *usageError
	switch {
	case errors.As(err, &uerr):
		return exitUsage
	case eval.Kind(err) == eval.KindStepLimit:
		return exitStepLimit
	}
	return exitFailure
}

func errExit(err error) {
	fmt.Fprintf(os.Stderr, "untyped: %s: %v\n", eval.Kind(err), err)
	os.Exit(exitCode(err))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		errExit(err)
	}
}
