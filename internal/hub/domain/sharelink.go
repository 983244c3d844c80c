package domain

import "time"

// ShareLink grants read-only access to a project through an opaque token.
// Only the token's fingerprint is stored; the raw token is returned exactly
// once at creation and then travels in the share URL.
type ShareLink struct {
	ID        string
	ProjectID string
	TokenHash string
	Active    bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Usable reports whether the link still grants access at now.
func (l ShareLink) Usable(now time.Time) bool {
	return l.Active && now.Before(l.ExpiresAt)
}
