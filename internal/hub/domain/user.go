package domain

import "time"

// User is an account owner (a creative professional managing clients and
// projects). PasswordHash is empty until the user sets a password.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2id PHC string, empty if no password set
	Tier         Tier

	// Password reset state. Only a fingerprint of the reset token is ever
	// stored; a fingerprint without a future expiry is treated as invalid.
	ResetTokenHash   string
	ResetTokenExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasActiveResetToken reports whether the user has an outstanding,
// not-yet-expired password reset token.
func (u User) HasActiveResetToken(now time.Time) bool {
	return u.ResetTokenHash != "" && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now)
}
