package events

import (
	"log/slog"
	"testing"
	"time"
)

func TestStopEndsRun(t *testing.T) {
	h := NewHub(slog.Default())

	finished := make(chan struct{})
	go func() {
		h.Run()
		close(finished)
	}()

	h.Publish("save.created", map[string]int{"id": 1})
	h.Stop()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()

	h.Stop()
	h.Stop()
}

func TestPublishAfterStopDoesNotBlock(t *testing.T) {
	h := NewHub(slog.Default())

	finished := make(chan struct{})
	go func() {
		h.Run()
		close(finished)
	}()
	h.Stop()
	<-finished

	done := make(chan struct{})
	go func() {
		// The queue holds 64 events; past that, publishes must drop
		// rather than block now that nothing drains the channel.
		for i := 0; i < 200; i++ {
			h.Publish("system.discovered", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked after Stop")
	}
}
