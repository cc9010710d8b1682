// Package transport implements the single-shot HTTP GET with its internal
// 3-try retry on transport failure (spec §4.2, component C2). It never
// inspects the response body: invalid-session detection is the driver's
// concern.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const maxAttempts = 3

// Fetcher performs blocking HTTP GETs with a bounded retry.
type Fetcher struct {
	HTTPClient *http.Client
}

// New returns a Fetcher with a sane default timeout, following the
// teacher's *http.Client{Timeout: ...} convention.
func New() *Fetcher {
	return &Fetcher{HTTPClient: &http.Client{Timeout: 30 * time.Second}}
}

// Get performs the request, retrying up to 3 times on transport error. It
// returns Ok as soon as any attempt yields a body; on 3 consecutive
// failures it returns the concatenation of all three failure messages.
func (f *Fetcher) Get(ctx context.Context, url string) (string, error) {
	var failures []string

	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := f.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		failures = append(failures, err.Error())
		log.Debug().Str("url", url).Int("attempt", attempt+1).Err(err).Msg("transport attempt failed")
	}

	return "", fmt.Errorf("%s", strings.Join(wrapAll(failures), " |"))
}

func wrapAll(msgs []string) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = " " + m
	}
	return out
}

func (f *Fetcher) attempt(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("Error requesting url: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("Error requesting url: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("Error decoding response: %w", err)
	}

	return string(body), nil
}
