package monitor

import (
	"fmt"
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewNotificationQueue()
	q.Enqueue("g", "m1")
	q.Enqueue("g", "m2")
	q.Enqueue("g", "m3")

	messages := q.Drain("g")
	if len(messages) != 3 {
		t.Fatal("expected 3 messages, got ", len(messages))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if messages[i] != want {
			t.Error("order not preserved: ", messages)
		}
	}
}

func TestQueueDrainTwice(t *testing.T) {
	q := NewNotificationQueue()
	q.Enqueue("g", "m1")
	q.Drain("g")
	if again := q.Drain("g"); len(again) != 0 {
		t.Error("second drain should be empty, got ", again)
	}
}

func TestQueueGroupsIsolated(t *testing.T) {
	q := NewNotificationQueue()
	q.Enqueue("g1", "a")
	q.Enqueue("g2", "b")
	if messages := q.Drain("g1"); len(messages) != 1 || messages[0] != "a" {
		t.Error("unexpected drain for g1: ", messages)
	}
	if q.PendingCount("g2") != 1 {
		t.Error("g2 buffer affected by g1 drain")
	}
}

func TestQueueConcurrentEnqueueDrain(t *testing.T) {
	q := NewNotificationQueue()
	const n = 200

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Enqueue("g", fmt.Sprint("m", i))
		}
	}()

	seen := 0
	for i := 0; i < n; i++ {
		seen += len(q.Drain("g"))
	}
	wg.Wait()
	seen += len(q.Drain("g"))

	// at-most-once and nothing lost
	if seen != n {
		t.Error("expected ", n, " messages across drains, got ", seen)
	}
}
