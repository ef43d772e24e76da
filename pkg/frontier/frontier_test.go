package frontier

import (
	"fmt"
	"testing"
)

func TestFrontier_SeedAndNext(t *testing.T) {
	f := New(10)
	f.Seed("https://example.com/")

	item, ok := f.Next()
	if !ok {
		t.Fatal("expected seeded item")
	}
	if item.URL != "https://example.com/" || item.Depth != 0 {
		t.Errorf("got %+v, want seed at depth 0", item)
	}

	if _, ok := f.Next(); ok {
		t.Error("queue should be empty after draining")
	}
}

func TestFrontier_DeduplicatesURLs(t *testing.T) {
	f := New(10)

	if !f.Enqueue("https://example.com/a", 1) {
		t.Error("first enqueue should succeed")
	}
	if f.Enqueue("https://example.com/a", 2) {
		t.Error("duplicate URL must be rejected regardless of depth")
	}
	if f.QueueLen() != 1 {
		t.Errorf("QueueLen = %d, want 1", f.QueueLen())
	}
}

func TestFrontier_CapEnforcedOnDiscovery(t *testing.T) {
	f := New(3)

	for i := 0; i < 5; i++ {
		f.Enqueue(fmt.Sprintf("https://example.com/p%d", i), 1)
	}

	if f.VisitedCount() != 3 {
		t.Errorf("VisitedCount = %d, want 3 (cap)", f.VisitedCount())
	}
	if f.QueueLen() != 3 {
		t.Errorf("QueueLen = %d, want 3 (cap)", f.QueueLen())
	}
	if f.Enqueue("https://example.com/late", 1) {
		t.Error("enqueue past the cap must be rejected")
	}
}

func TestFrontier_BreadthFirstOrder(t *testing.T) {
	f := New(100)
	f.Seed("https://example.com/")
	f.Enqueue("https://example.com/a", 1)
	f.Enqueue("https://example.com/b", 1)
	f.Enqueue("https://example.com/a/x", 2)
	f.Enqueue("https://example.com/b/y", 2)

	lastDepth := -1
	for {
		item, ok := f.Next()
		if !ok {
			break
		}
		if item.Depth < lastDepth {
			t.Errorf("depth %d dequeued after depth %d, order is not breadth-first", item.Depth, lastDepth)
		}
		lastDepth = item.Depth
	}
	if lastDepth != 2 {
		t.Errorf("final depth = %d, want 2", lastDepth)
	}
}
