// File: api/fail.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single fatal-failure call site for the library. Checked accessors that
// detect a contract violation (out-of-range index, access into an empty
// container) funnel through Fail; the default handler writes a diagnostic
// to stderr and terminates the process. Tests swap the handler via
// SetFailHandler to observe the fatal path in-process.

package api

import (
	"fmt"
	"os"
)

// FailHandler consumes a fatal diagnostic. A handler is expected not to
// return: the default one exits the process, test handlers panic.
type FailHandler func(err error)

var failHandler FailHandler = defaultFailHandler

func defaultFailHandler(err error) {
	fmt.Fprintf(os.Stderr, "nexvec: fatal: %v\n", err)
	os.Exit(1)
}

// SetFailHandler installs h as the fatal-failure handler and returns the
// previous one. Passing nil restores the default handler.
func SetFailHandler(h FailHandler) FailHandler {
	prev := failHandler
	if h == nil {
		h = defaultFailHandler
	}
	failHandler = h
	return prev
}

// Fail reports a fatal contract violation. It never returns normally: the
// handler is expected to exit or panic, and if a misbehaving handler
// returns anyway, Fail panics rather than let the caller continue with a
// violated precondition.
func Fail(err error) {
	failHandler(err)
	panic(err)
}
