// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package gcshim

import (
	"fmt"

	"github.com/pkg/errors"
)

// PanicError is an error type wrapping a recovered panic value that happened
// while forwarding a call to the GC module. Such error must be considered
// unrecoverable: the host should stop using the GC module.
type PanicError struct {
	// The entry point that was being forwarded to.
	EntryPoint string
	// The recovered panic value.
	Err error
}

func newPanicError(entryPoint string, err error) *PanicError {
	return &PanicError{
		EntryPoint: entryPoint,
		Err:        err,
	}
}

// Unwrap the error and return it.
// Required by errors.Is and errors.As functions.
func (e *PanicError) Unwrap() error {
	return e.Err
}

// Error returns the error string representation.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic while forwarding to %s: %#+v", e.EntryPoint, e.Err)
}

// tryCall calls function `f` and recovers from any panic occurring while it
// executes, returning it in a `PanicError` object type.
func tryCall(entryPoint string, f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			// Note that panic(nil) matches this case and cannot be really tested for.
			return
		}

		switch actual := r.(type) {
		case error:
			err = errors.WithStack(actual)
		case string:
			err = errors.New(actual)
		default:
			err = errors.Errorf("%v", r)
		}

		err = newPanicError(entryPoint, err)
	}()
	f()
	return nil
}
