package methods

// runIsolated executes fn on a dedicated goroutine and blocks until it
// finishes. Collaborator clients keep their scheduling and connection state
// on a stack that is created and torn down per invocation, so nothing warm
// survives into the next timed pass.
func runIsolated(fn func() ([]byte, error)) ([]byte, error) {
	type outcome struct {
		data []byte
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		data, err := fn()
		done <- outcome{data: data, err: err}
	}()
	out := <-done
	return out.data, out.err
}
