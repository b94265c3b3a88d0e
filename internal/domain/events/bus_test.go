package events

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestBus_SubscribePublish_TypeIsolation(t *testing.T) {
	var deleted int32

	cancel := Subscribe(func(ev LinkDeleted) {
		atomic.AddInt32(&deleted, int32(len(ev.Links)))
	})
	defer cancel()

	Publish(LinkDeleted{Links: []string{"a.com"}})
	Publish(LinkDeleted{Links: []string{"b.com", "c.com"}})
	Publish(WhitelistChanged{Kind: "user", ID: 1}) // must not affect the counter

	if got := atomic.LoadInt32(&deleted); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
}

func TestBus_Cancel_Unsubscribe(t *testing.T) {
	var hits int32

	before := Count[WhitelistChanged]()
	cancel := Subscribe(func(WhitelistChanged) {
		atomic.AddInt32(&hits, 1)
	})
	if got := Count[WhitelistChanged](); got != before+1 {
		t.Fatalf("want %d subscribers after subscribe, got %d", before+1, got)
	}

	cancel() // unsubscribe before publishing
	if got := Count[WhitelistChanged](); got != before {
		t.Fatalf("want %d subscribers after cancel, got %d", before, got)
	}

	Publish(WhitelistChanged{Kind: "role", ID: 2, Added: true})

	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Fatalf("want 0 after cancel, got %d", got)
	}
}

func TestBus_Concurrency_NoRaces(t *testing.T) {
	var hits int32

	cancel := Subscribe(func(LinkDeleted) {
		atomic.AddInt32(&hits, 1)
	})
	defer cancel()

	const G = 50
	const N = 100
	var wg sync.WaitGroup
	wg.Add(G)
	for g := 0; g < G; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < N; i++ {
				Publish(LinkDeleted{MessageID: "m"})
			}
		}()
	}
	wg.Wait()

	want := int32(G * N)
	if got := atomic.LoadInt32(&hits); got != want {
		t.Fatalf("want %d, got %d", want, got)
	}
}
