// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for logging errors in places where they cannot be propagated,
// such as rendering callbacks driven by change notifications.
// It also re-exports the standard [errors] functions so that only
// this package needs to be imported.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

var (
	New  = errors.New
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Recovered converts a value obtained from recover into an error,
// returning nil if nothing was recovered.
func Recovered(r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return fmt.Errorf("panic: %v", v)
	}
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s %s:%d", runtime.FuncForPC(pc).Name(), file, line)
}
