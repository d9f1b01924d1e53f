package models

import "time"

// Token is an opaque bearer credential identifying a live session.
type Token string

// Fingerprint returns a short prefix of the token that is safe to log.
func (t Token) Fingerprint() string {
	const n = 8
	if len(t) <= n {
		return "***"
	}
	return string(t[:n]) + "…"
}

// Session is what a token resolves to. The role is captured at
// authentication time and is not refreshed when the stored role changes.
type Session struct {
	UserID   int64
	Role     Role
	IssuedAt time.Time
}

// ExpiredAt reports whether the session is older than ttl at now. A zero ttl
// means sessions never expire.
func (s Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.IssuedAt) >= ttl
}
