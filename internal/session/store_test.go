package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	st := NewMemoryStore(time.Hour)
	ctx := context.Background()

	got, err := st.Get(ctx, "U1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no session for new user, got %+v", got)
	}

	s := New("U1")
	s.Greeted = true
	s.Step = StepAwaitingPrice
	s.Vendor = VendorNVIDIA
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = st.Get(ctx, "U1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Step != StepAwaitingPrice || got.Vendor != VendorNVIDIA || !got.Greeted {
		t.Fatalf("unexpected session: %+v", got)
	}

	// mutations on the returned copy must not leak into the store
	got.Step = StepAwaitingMemory
	again, _ := st.Get(ctx, "U1")
	if again.Step != StepAwaitingPrice {
		t.Fatalf("store entry mutated through returned copy")
	}
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	st := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	if err := st.Save(ctx, New("U2")); err != nil {
		t.Fatalf("save: %v", err)
	}
	time.Sleep(40 * time.Millisecond)

	got, err := st.Get(ctx, "U2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected expired session to be evicted, got %+v", got)
	}
}

func TestNormalize_UnknownStep(t *testing.T) {
	st := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s := New("U3")
	s.Step = Step("bogus")
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := st.Get(ctx, "U3")
	if got.Step != StepGreeting {
		t.Fatalf("expected unknown step to normalize to greeting, got %q", got.Step)
	}
}

func TestLocks_SerializePerUser(t *testing.T) {
	locks := NewLocks()

	var mu sync.Mutex
	active := 0
	maxActive := 0

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("same-user")
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxActive != 1 {
		t.Fatalf("expected at most one concurrent turn per user, saw %d", maxActive)
	}
}
