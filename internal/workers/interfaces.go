// Package workers provides abstractions for managing and running background
// workers in the application. It defines the Worker interface and a Workers
// aggregate that starts multiple workers in a unified way.
package workers

// Worker is implemented by any background process with a single Run entry
// point. Implementations either block for the duration of their work or spawn
// goroutines internally; the views refresh job does the latter.
type Worker interface {
	Run()
}
