// Package signer builds the signed URLs the Smite/HiRez stats API requires
// on every call. All operations are pure and reentrant: they sample the
// current time and hash it with the caller-supplied credentials, with no
// shared state between calls.
package signer

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// Clock returns the current UTC time. Overridable in tests so signature
// fixtures (see signer_test.go) can pin a timestamp.
type Clock func() time.Time

// Signer produces signed URLs for a fixed developer id/key pair against a
// fixed base URL and response format.
type Signer struct {
	DevID   string
	DevKey  string
	BaseURL string
	Format  string
	Now     Clock
}

// New returns a Signer using the real wall clock.
func New(devID, devKey, baseURL, format string) *Signer {
	return &Signer{DevID: devID, DevKey: devKey, BaseURL: baseURL, Format: format, Now: time.Now}
}

func (s *Signer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// timestamp renders the UTC clock as YYYYMMDDhhmmss, per spec.
func timestamp(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%04d%02d%02d%02d%02d%02d", u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second())
}

// Signature computes lowercase_hex(MD5(devID || methodName || devKey || ts)).
func Signature(devID, methodName, devKey, ts string) string {
	sum := md5.Sum([]byte(devID + methodName + devKey + ts))
	return hex.EncodeToString(sum[:])
}

// SessionURL builds the createsession request URL.
func (s *Signer) SessionURL(methodName string) string {
	ts := timestamp(s.now())
	sig := Signature(s.DevID, methodName, s.DevKey, ts)
	return fmt.Sprintf("%s/%s%s/%s/%s/%s", s.BaseURL, methodName, s.Format, s.DevID, sig, ts)
}

// URL builds a signed, session-bearing request URL for any other method.
// methodSpecific is the caller-supplied tail and must already begin with
// "/" when non-empty.
func (s *Signer) URL(methodName, sessionKey, methodSpecific string) string {
	ts := timestamp(s.now())
	sig := Signature(s.DevID, methodName, s.DevKey, ts)
	return fmt.Sprintf("%s/%s%s/%s/%s/%s/%s%s", s.BaseURL, methodName, s.Format, s.DevID, sig, sessionKey, ts, methodSpecific)
}

// PingURL builds the unsigned connectivity-check URL.
func (s *Signer) PingURL(methodName string) string {
	return fmt.Sprintf("%s/%s%s", s.BaseURL, methodName, s.Format)
}
