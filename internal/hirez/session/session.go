package session

import "time"

// Session is a borrowed authentication ticket issued by createsession.
type Session struct {
	Key       string
	CreatedAt time.Time
}

// IsValid reports whether the session is still within its TTL.
func (s Session) IsValid(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) < ttl
}
