// Package session implements the quota-aware session pool (spec §4.3,
// component C3): the only shared mutable resource in the client, guarded
// by a single mutex. Every operation holds it throughout, except
// GetSessionKey, which releases it around the createsession network call.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/elsa-voss/hirezclient/internal/hirez/constants"
)

// Signer is the subset of signer.Signer the pool needs to build a
// createsession URL.
type Signer interface {
	SessionURL(methodName string) string
}

// Fetcher is the subset of transport.Fetcher the pool needs to perform the
// createsession HTTP call.
type Fetcher interface {
	Get(ctx context.Context, url string) (string, error)
}

// createSessionReply is the narrow 3-field reply createsession returns.
// This is a C3-internal concern, distinct from the Facade's typed response
// catalogue in internal/hirez/model.
type createSessionReply struct {
	RetMsg    *string `json:"ret_msg"`
	SessionID *string `json:"session_id"`
	Timestamp *string `json:"timestamp"`
}

// Pool is the thread-safe, quota-aware session pool described in spec §3.
type Pool struct {
	mu sync.Mutex

	idle   []Session
	active map[string]Session

	sessionsCreated   int
	validSessionCount int
	numRequests       int

	signer  Signer
	fetcher Fetcher

	now func() time.Time
	rng func() time.Duration // jitter source for GetSessionKeyConcurrent
}

// New returns an empty pool. Call Load to seed it from a persisted
// sessions file before issuing keys.
func New(signer Signer, fetcher Fetcher) *Pool {
	return &Pool{
		active:  make(map[string]Session),
		signer:  signer,
		fetcher: fetcher,
		now:     time.Now,
		rng:     func() time.Duration { return time.Duration(rand.Int63n(int64(50 * time.Millisecond))) },
	}
}

// Stats is a point-in-time snapshot of pool occupancy, useful for the
// debug/status surface and for tests.
type Stats struct {
	Idle              int
	Active            int
	SessionsCreated   int
	ValidSessionCount int
	NumRequests       int
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Stats{
		Idle:              len(p.idle),
		Active:            len(p.active),
		SessionsCreated:   p.sessionsCreated,
		ValidSessionCount: p.validSessionCount,
		NumRequests:       p.numRequests,
	}
}

// GetSessionKey implements spec §4.3.1's get_session_key: reuse an idle
// session if one exists, otherwise check quotas in order and, if room
// remains, create a new one.
func (p *Pool) GetSessionKey(ctx context.Context) (string, error) {
	p.mu.Lock()

	if n := len(p.idle); n > 0 {
		s := p.idle[0]
		p.idle = p.idle[1:]
		p.active[s.Key] = s
		p.numRequests++
		p.mu.Unlock()
		log.Debug().Str("sessionKey", s.Key).Msg("reused idle session")
		return s.Key, nil
	}

	// Open question (a) in SPEC_FULL.md: RequestsPerDay is checked only on
	// this creation branch, never on the idle-reuse branch above — this
	// matches the behavior the spec distills from the original source.
	switch {
	case p.sessionsCreated >= constants.SessionsPerDay:
		p.mu.Unlock()
		return "", ErrSessionsExhausted{Limit: constants.SessionsPerDay}
	case p.numRequests >= constants.RequestsPerDay:
		p.mu.Unlock()
		return "", ErrRequestsExhausted{Limit: constants.RequestsPerDay}
	case p.validSessionCount >= constants.ConcurrentSessions:
		p.mu.Unlock()
		return "", ErrNoSessionsAvailable{Limit: constants.ConcurrentSessions}
	}
	p.mu.Unlock()

	// The network call happens outside the lock; counters and the active
	// set are updated under a fresh critical section below.
	s, err := p.createSession(ctx)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.validSessionCount++
	p.sessionsCreated++
	p.numRequests++
	p.active[s.Key] = s
	p.mu.Unlock()

	log.Info().Str("sessionKey", s.Key).Msg("created new session")
	return s.Key, nil
}

// GetSessionKeyConcurrent wraps GetSessionKey: on the transient
// ErrNoSessionsAvailable it sleeps 1s plus jitter and retries; any other
// error propagates immediately.
func (p *Pool) GetSessionKeyConcurrent(ctx context.Context) (string, error) {
	for {
		key, err := p.GetSessionKey(ctx)
		if err == nil {
			return key, nil
		}

		var transient ErrNoSessionsAvailable
		if !asNoSessionsAvailable(err, &transient) {
			return "", err
		}

		wait := time.Second + p.rng()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

func asNoSessionsAvailable(err error, target *ErrNoSessionsAvailable) bool {
	e, ok := err.(ErrNoSessionsAvailable)
	if ok {
		*target = e
	}
	return ok
}

// Replace moves the session identified by key from active to the tail of
// idle (spec §4.3.1's replace). The key must currently be active.
func (p *Pool) Replace(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.active[key]
	if !ok {
		log.Warn().Str("sessionKey", key).Msg("replace called for key not in active set")
		return
	}
	delete(p.active, key)
	p.idle = append(p.idle, s)
}

// RemoveInvalid removes the session identified by key from active and
// decrements validSessionCount. sessionsCreated is never decremented: the
// daily creation budget is already spent.
func (p *Pool) RemoveInvalid(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.active[key]; !ok {
		log.Warn().Str("sessionKey", key).Msg("removeInvalid called for key not in active set")
		return
	}
	delete(p.active, key)
	p.validSessionCount--
	log.Debug().Str("sessionKey", key).Msg("evicted invalid session")
}

// createSession performs the createsession HTTP round trip and parses its
// reply. It never touches pool counters or sets; the caller is responsible
// for committing state on success.
func (p *Pool) createSession(ctx context.Context) (Session, error) {
	url := p.signer.SessionURL(constants.MethodCreateSession)

	body, err := p.fetcher.Get(ctx, url)
	if err != nil {
		return Session{}, ErrSessionCreation{Reason: err.Error()}
	}

	var reply createSessionReply
	if err := json.Unmarshal([]byte(body), &reply); err != nil {
		return Session{}, ErrSessionCreation{Reason: fmt.Sprintf("unparseable reply: %v", err)}
	}

	if reply.RetMsg == nil || *reply.RetMsg != constants.ApprovedRetMsg {
		msg := "missing ret_msg"
		if reply.RetMsg != nil {
			msg = *reply.RetMsg
		}
		return Session{}, ErrSessionCreation{Reason: fmt.Sprintf("not approved: %s", msg)}
	}

	if reply.SessionID == nil || *reply.SessionID == "" {
		return Session{}, ErrSessionCreation{Reason: "missing session_id"}
	}

	return Session{Key: *reply.SessionID, CreatedAt: p.nowOrDefault()}, nil
}

func (p *Pool) nowOrDefault() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}
