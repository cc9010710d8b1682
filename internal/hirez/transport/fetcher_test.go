package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type flakyRoundTripper struct {
	failures int
	calls    int
}

func (rt *flakyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.calls++
	if rt.calls <= rt.failures {
		return nil, errors.New("connection refused")
	}
	return http.DefaultTransport.RoundTrip(req)
}

func TestFetcherSucceedsOnFirstTry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	f := New()
	body, err := f.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if body != "[]" {
		t.Fatalf("Get() body = %q, want %q", body, "[]")
	}
}

func TestFetcherRetriesAndSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	rt := &flakyRoundTripper{failures: 2}
	f := &Fetcher{HTTPClient: &http.Client{Transport: rt}}

	body, err := f.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if body != "ok" {
		t.Fatalf("Get() body = %q, want %q", body, "ok")
	}
	if rt.calls != 3 {
		t.Fatalf("calls = %d, want 3 (2 failures + 1 success)", rt.calls)
	}
}

func TestFetcherFailsAfterThreeAttempts(t *testing.T) {
	rt := &flakyRoundTripper{failures: 99}
	f := &Fetcher{HTTPClient: &http.Client{Transport: rt}}

	_, err := f.Get(context.Background(), "http://example.invalid/x")
	if err == nil {
		t.Fatal("Get() expected error after 3 failed attempts")
	}
	if rt.calls != maxAttempts {
		t.Fatalf("calls = %d, want %d", rt.calls, maxAttempts)
	}
	if !strings.Contains(err.Error(), "Error requesting url") {
		t.Fatalf("error = %q, expected it to mention request failures", err.Error())
	}
}
