package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32
	boom := errors.New("boom")

	loader := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", boom
		}
		return "recovered", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("unexpected value %q", v)
	}
}

func TestStore_ExpiredEntriesReload(t *testing.T) {
	t.Parallel()

	store := NewStore[int](10 * time.Millisecond)
	store.Set(context.Background(), "k", 1)

	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	ctx := context.Background()
	store.Set(ctx, "teams:la-liga:86", 1)
	store.Set(ctx, "teams:la-liga:70", 2)
	store.Set(ctx, "teams:epl:86", 3)

	store.DeletePrefix(ctx, "teams:la-liga:")

	if _, ok := store.Get(ctx, "teams:la-liga:86"); ok {
		t.Fatalf("expected la-liga entries to be gone")
	}
	if _, ok := store.Get(ctx, "teams:la-liga:70"); ok {
		t.Fatalf("expected la-liga entries to be gone")
	}
	if _, ok := store.Get(ctx, "teams:epl:86"); !ok {
		t.Fatalf("expected epl entry to survive")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
