// Package driver implements the concurrent request driver (spec §4.4,
// component C4): a bounded, wave-scheduled fan-out that borrows sessions
// from the pool, signs and fetches each request, and retries on the
// invalid-session sentinel.
package driver

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/elsa-voss/hirezclient/internal/hirez/constants"
)

// SessionBorrower is the subset of session.Pool the driver needs.
type SessionBorrower interface {
	GetSessionKeyConcurrent(ctx context.Context) (string, error)
	Replace(key string)
	RemoveInvalid(key string)
}

// URLSigner is the subset of signer.Signer the driver needs.
type URLSigner interface {
	URL(methodName, sessionKey, methodSpecific string) string
}

// Fetcher is the subset of transport.Fetcher the driver needs.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// Driver dispatches waves of signed, session-bearing HTTP GETs bounded by
// the pool's concurrency ceiling.
type Driver struct {
	Pool    SessionBorrower
	Signer  URLSigner
	Fetcher Fetcher

	// WaveSize bounds fan-out per wave; defaults to
	// constants.ConcurrentSessions when zero.
	WaveSize int

	// Metrics, optional. A nil Metrics is a no-op.
	Metrics *Metrics
}

// ConcurrentFetch implements spec §4.4.1: given a method and a list of
// per-call URL suffixes, returns one body per suffix on a best-effort
// basis — a worker that gives up contributes nothing, so the result may be
// shorter than suffixes.
func (d *Driver) ConcurrentFetch(ctx context.Context, method string, suffixes []string) []string {
	waveSize := d.WaveSize
	if waveSize <= 0 {
		waveSize = constants.ConcurrentSessions
	}

	var (
		mu      sync.Mutex
		results []string
	)

	for start := 0; start < len(suffixes); start += waveSize {
		end := start + waveSize
		if end > len(suffixes) {
			end = len(suffixes)
		}
		wave := suffixes[start:end]

		// Plain errgroup.Group (no WithContext): a terminal pool error
		// observed by one worker must not cancel its siblings in the same
		// wave (spec §4.4.4) — each worker discovers the same terminal
		// error independently and exits on its own.
		var g errgroup.Group
		for _, suffix := range wave {
			suffix := suffix
			g.Go(func() error {
				body, ok := d.runWorker(ctx, method, suffix)
				d.countProgress()
				if ok {
					mu.Lock()
					results = append(results, body)
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait() // workers never return an error; this is purely the barrier
	}

	return results
}

// runWorker implements the per-worker protocol of spec §4.4.3: borrow,
// sign, fetch, detect-and-retry on invalid session, reclaim on success.
func (d *Driver) runWorker(ctx context.Context, method, suffix string) (string, bool) {
	requestID := uuid.New().String()
	logger := log.With().Str("requestId", requestID).Str("method", method).Logger()

	for {
		key, err := d.Pool.GetSessionKeyConcurrent(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("worker could not borrow a session")
			return "", false
		}

		url := d.Signer.URL(method, key, suffix)

		start := time.Now()
		body, err := d.Fetcher.Get(ctx, url)
		d.recordLatency(time.Since(start))
		if err != nil {
			logger.Error().Err(err).Str("sessionKey", key).Msg("fetch failed, dropping worker")
			return "", false
		}

		if strings.Contains(body, constants.InvalidSessionSentinel) {
			logger.Warn().Str("sessionKey", key).Msg("invalid session, evicting and retrying")
			d.Pool.RemoveInvalid(key)
			continue
		}

		d.Pool.Replace(key)
		return body, true
	}
}

func (d *Driver) recordLatency(dur time.Duration) {
	if d.Metrics != nil {
		d.Metrics.RecordLatency(dur)
	}
}

func (d *Driver) countProgress() {
	if d.Metrics != nil {
		d.Metrics.IncrementCompleted()
	}
}
