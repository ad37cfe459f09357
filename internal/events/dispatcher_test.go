package events

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestPublishInvokesAllHandlersDespiteErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls int32
	d.Subscribe(EventBlogPublished, func(context.Context, Event) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("handler failed")
	})
	d.Subscribe(EventBlogPublished, func(context.Context, Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventBlogPublished}); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("handler calls = %d, want 2", got)
	}
}

func TestPublishIgnoresUnrelatedEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventBlogPublished, func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventType("unrelated")}); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if called {
		t.Fatalf("handler must not run for other event types")
	}
}

func TestPublishAsyncDeliversOffTheCallerGoroutine(t *testing.T) {
	d := NewInMemoryDispatcher()

	delivered := make(chan Event, 1)
	d.Subscribe(EventBlogPublished, func(_ context.Context, e Event) error {
		delivered <- e
		return nil
	})

	d.PublishAsync(Event{ID: "evt-1", Type: EventBlogPublished})

	select {
	case e := <-delivered:
		if e.ID != "evt-1" {
			t.Fatalf("delivered event ID = %q, want evt-1", e.ID)
		}
	case <-time.After(time.Second):
		t.Fatalf("event was not delivered")
	}
}
