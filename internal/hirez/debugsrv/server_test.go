package debugsrv

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elsa-voss/hirezclient/internal/hirez/driver"
	"github.com/elsa-voss/hirezclient/internal/hirez/session"
)

type fakePool struct{ stats session.Stats }

func (p fakePool) Stats() session.Stats { return p.stats }

type fakeMetrics struct {
	completed int64
	snap      driver.LatencySnapshot
}

func (m fakeMetrics) Snapshot() driver.LatencySnapshot { return m.snap }
func (m fakeMetrics) Completed() int64                 { return m.completed }

func TestHealthz(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPoolEndpointReportsStats(t *testing.T) {
	s := &Server{Pool: fakePool{stats: session.Stats{Idle: 2, Active: 3}}}
	req := httptest.NewRequest(http.MethodGet, "/pool", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPoolEndpointUnavailableWithoutPool(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/pool", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestMetricsEndpointReportsSnapshot(t *testing.T) {
	s := &Server{Metrics: fakeMetrics{completed: 5, snap: driver.LatencySnapshot{P50: 100, Count: 5}}}
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
