package session

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Store writes both active and idle sessions to a newline-delimited file
// at path, one "<key> <creation_unix_seconds>" record per line; the pool's
// own sets are left unchanged. Called on teardown (spec §4.3.1's store).
func (p *Pool) Store(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sessions file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	writeOne := func(s Session) {
		fmt.Fprintf(w, "%s %d\n", s.Key, s.CreatedAt.Unix())
	}
	for _, s := range p.idle {
		writeOne(s)
	}
	for _, s := range p.active {
		writeOne(s)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing sessions file: %w", err)
	}

	log.Info().Int("count", len(p.idle)+len(p.active)).Str("path", path).Msg("persisted sessions")
	return nil
}

// Load reads a previously persisted sessions file, if it exists, seeding
// idle_sessions with every well-formed record (spec §4.3.1's load); a
// record's age is not checked against SessionTimeLimit here.
// validSessionCount is set to the number of sessions loaded.
// sessionsCreated carries over only for sessions created within the last
// 86400 seconds (SPEC_FULL.md §D(b)): the per-process num_requests counter
// is never restored.
func (p *Pool) Load(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening sessions file: %w", err)
	}
	defer f.Close()

	now := time.Now()
	var loaded []Session
	createdToday := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ts, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		s := Session{Key: fields[0], CreatedAt: time.Unix(ts, 0)}
		loaded = append(loaded, s)
		if now.Sub(s.CreatedAt) < 24*time.Hour {
			createdToday++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading sessions file: %w", err)
	}

	p.mu.Lock()
	p.idle = append(p.idle, loaded...)
	p.validSessionCount = len(p.idle) + len(p.active)
	p.sessionsCreated = createdToday
	p.mu.Unlock()

	log.Info().Int("count", len(loaded)).Str("path", path).Msg("loaded persisted sessions")
	return nil
}
