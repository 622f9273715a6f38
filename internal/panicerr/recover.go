// Package panicerr isolates a unit of work in its own goroutine so that a
// panic or runtime.Goexit inside it (for example the WordReturn/ExitRequest
// control signals, or a genuine bug) surfaces as a plain error rather than
// taking down the whole process.
package panicerr

// Recover runs f in a new goroutine wrapped in defer logic that turns any
// abnormal exit or panic into a non-nil error return. Used both to isolate a
// single top-level statement — so a runtime error unwinds only that
// statement, not the whole session — and to isolate an entire program run
// under the CLI.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExitError(name, errch)
		defer recoverPanicError(name, errch)
		errch <- f()
	}()
	return <-errch
}
