package tui

import (
	"sync"
)

// callQueue runs importer calls on its own goroutine, one at a time and in
// the order Update queued them. The orchestrator reports back through
// Program.Send, which must not be called from the update loop.
type callQueue struct {
	mu      sync.Mutex
	pending []func()
	running bool
}

func (q *callQueue) push(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.mu.Unlock()
	go q.drain()
}

func (q *callQueue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()
		fn()
	}
}
