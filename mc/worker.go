package mc

import "runtime"

// workerCount bounds the number of batch goroutines running at once to
// GOMAXPROCS, the same "bounded worker pool" the spec's concurrency
// model calls for, just expressed as a semaphore-guarded goroutine pool
// rather than a pinned OS thread pool.
func workerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return n
}
