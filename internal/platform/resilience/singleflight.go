package resilience

import "sync"

// SingleFlight coalesces concurrent loads of the same key onto one
// execution. Waiters block until the leader finishes and share its result,
// error included; the key is forgotten as soon as the call returns, so a
// failed load can be retried. The zero value is ready to use.
type SingleFlight[T any] struct {
	mu       sync.Mutex
	inflight map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs load at most once per key at a time. The bool reports whether the
// result was shared from a call another goroutine led.
func (g *SingleFlight[T]) Do(key string, load func() (T, error)) (T, error, bool) {
	g.mu.Lock()
	if g.inflight == nil {
		g.inflight = make(map[string]*flightCall[T])
	}
	if c, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &flightCall[T]{done: make(chan struct{})}
	g.inflight[key] = c
	g.mu.Unlock()

	c.val, c.err = load()
	close(c.done)

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return c.val, c.err, false
}
