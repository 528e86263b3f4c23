// File: fake/fail.go
// Author: momentics <momentics@gmail.com>
//
// Recording fail handler so tests can observe the fatal path without
// terminating the test process.

package fake

import "github.com/momentics/nexvec/api"

// failurePanic carries the diagnostic out of api.Fail instead of exiting.
type failurePanic struct{ err error }

// FailRecorder intercepts api.Fail and records every diagnostic it sees.
type FailRecorder struct {
	Errs []error
	prev api.FailHandler
}

// Install routes api.Fail through the recorder. Pair with Restore.
func (r *FailRecorder) Install() {
	r.prev = api.SetFailHandler(func(err error) {
		r.Errs = append(r.Errs, err)
		panic(failurePanic{err})
	})
}

// Restore reinstates the handler that was active before Install.
func (r *FailRecorder) Restore() {
	api.SetFailHandler(r.prev)
}

// Catch runs fn and returns the diagnostic of the fatal failure it
// triggered, or nil if fn completed normally. Panics unrelated to the
// recorder propagate.
func (r *FailRecorder) Catch(fn func()) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		fp, ok := rec.(failurePanic)
		if !ok {
			panic(rec)
		}
		err = fp.err
	}()
	fn()
	return nil
}
