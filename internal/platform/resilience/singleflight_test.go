package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CoalescesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight[string]
	var executions atomic.Int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	shared := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, wasShared := flight.Do("team-57", func() (string, error) {
				executions.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "matches", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if v != "matches" {
				t.Errorf("unexpected value: %q", v)
			}
			shared <- wasShared
		}()
	}

	close(start)
	wg.Wait()
	close(shared)

	if got := executions.Load(); got != 1 {
		t.Fatalf("fn executed %d times, want 1", got)
	}

	leaders := 0
	for wasShared := range shared {
		if !wasShared {
			leaders++
		}
	}
	if leaders != 1 {
		t.Fatalf("expected exactly one leader, got %d", leaders)
	}
}

func TestSingleFlight_ErrorSharedThenForgotten(t *testing.T) {
	t.Parallel()

	var flight SingleFlight[int]
	errBoom := errors.New("boom")

	if _, err, _ := flight.Do("k", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("first call error = %v, want %v", err, errBoom)
	}

	// Key must be forgotten after the call returns so a retry re-executes.
	v, err, wasShared := flight.Do("k", func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if wasShared {
		t.Fatalf("retry unexpectedly shared a stale call")
	}
	if v != 42 {
		t.Fatalf("unexpected retry value: %d", v)
	}
}
