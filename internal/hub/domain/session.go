package domain

import "time"

// Session binds an opaque, unguessable token to a user. The token itself is
// the primary key; it is delivered to the client in an HttpOnly cookie.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time

	// Fresh is set when validation re-stamped the expiry; the caller must
	// reissue the session cookie so a long-lived legitimate session is not
	// cut off by the sliding expiry. Never persisted.
	Fresh bool
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
