package driver

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

type fakePool struct {
	mu              sync.Mutex
	created         int
	evicted         []string
	nextID          int
	invalidFirstUse map[string]bool // keys that should look invalid on first use
}

func newFakePool() *fakePool {
	return &fakePool{invalidFirstUse: map[string]bool{}}
}

func (p *fakePool) GetSessionKeyConcurrent(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.created++
	return fmt.Sprintf("key-%d", p.nextID), nil
}

func (p *fakePool) Replace(string) {}

func (p *fakePool) RemoveInvalid(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evicted = append(p.evicted, key)
}

type fakeSigner struct{}

func (fakeSigner) URL(method, sessionKey, suffix string) string {
	return "http://fake/" + method + "/" + sessionKey + suffix
}

type scriptedFetcher struct {
	mu          sync.Mutex
	invalidOnce map[string]bool // session keys that return "invalid" exactly once
	seen        map[string]int
}

func (f *scriptedFetcher) Get(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.invalidOnce {
		if f.invalidOnce[key] && contains(url, key) && f.seen[key] == 0 {
			f.seen[key]++
			return "{\"ret_msg\":\"Invalid session id\"}", nil
		}
	}
	return "[]", nil
}

func contains(haystack, needle string) bool {
	return len(haystack) >= len(needle) && (func() bool {
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if haystack[i:i+len(needle)] == needle {
				return true
			}
		}
		return false
	})()
}

// TestSingleWaveNoInvalidSession covers end-to-end scenario 1.
func TestSingleWaveNoInvalidSession(t *testing.T) {
	pool := newFakePool()
	fetcher := &scriptedFetcher{invalidOnce: map[string]bool{}, seen: map[string]int{}}
	d := &Driver{Pool: pool, Signer: fakeSigner{}, Fetcher: fetcher, WaveSize: 45}

	bodies := d.ConcurrentFetch(context.Background(), "getgods", []string{"/1", "/2", "/3"})
	if len(bodies) != 3 {
		t.Fatalf("len(bodies) = %d, want 3", len(bodies))
	}
	for _, b := range bodies {
		if b != "[]" {
			t.Fatalf("body = %q, want []", b)
		}
	}
	if len(pool.evicted) != 0 {
		t.Fatalf("evicted = %v, want none", pool.evicted)
	}
}

// TestWaveLargerThanConcurrencyCeiling covers end-to-end scenario 2.
func TestWaveLargerThanConcurrencyCeiling(t *testing.T) {
	pool := newFakePool()
	fetcher := &scriptedFetcher{invalidOnce: map[string]bool{}, seen: map[string]int{}}
	d := &Driver{Pool: pool, Signer: fakeSigner{}, Fetcher: fetcher, WaveSize: 45}

	suffixes := make([]string, 50)
	for i := range suffixes {
		suffixes[i] = fmt.Sprintf("/%d", i)
	}

	bodies := d.ConcurrentFetch(context.Background(), "getgods", suffixes)
	if len(bodies) != 50 {
		t.Fatalf("len(bodies) = %d, want 50", len(bodies))
	}
}

// TestInvalidSessionRetry covers end-to-end scenario 3: the first session
// used is rejected, the worker evicts and retries with a fresh one.
func TestInvalidSessionRetry(t *testing.T) {
	pool := newFakePool()
	fetcher := &scriptedFetcher{invalidOnce: map[string]bool{"key-1": true}, seen: map[string]int{}}
	d := &Driver{Pool: pool, Signer: fakeSigner{}, Fetcher: fetcher, WaveSize: 45}

	bodies := d.ConcurrentFetch(context.Background(), "getgods", []string{"/1"})
	if len(bodies) != 1 {
		t.Fatalf("len(bodies) = %d, want 1", len(bodies))
	}
	if len(pool.evicted) != 1 || pool.evicted[0] != "key-1" {
		t.Fatalf("evicted = %v, want [key-1]", pool.evicted)
	}
	if pool.created != 2 {
		t.Fatalf("created = %d, want 2 (original + retry)", pool.created)
	}
}

func TestMetricsTracksCompletionAndLatency(t *testing.T) {
	pool := newFakePool()
	fetcher := &scriptedFetcher{invalidOnce: map[string]bool{}, seen: map[string]int{}}
	metrics := NewMetrics()
	d := &Driver{Pool: pool, Signer: fakeSigner{}, Fetcher: fetcher, WaveSize: 45, Metrics: metrics}

	d.ConcurrentFetch(context.Background(), "getgods", []string{"/1", "/2"})

	if got := metrics.Completed(); got != 2 {
		t.Fatalf("Completed() = %d, want 2", got)
	}
	if snap := metrics.Snapshot(); snap.Count != 2 {
		t.Fatalf("Snapshot().Count = %d, want 2", snap.Count)
	}
}
