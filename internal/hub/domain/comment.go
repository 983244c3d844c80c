package domain

import "time"

// Comment is feedback left on a song version, typically by a client visiting
// a shared project page. Author and Email are self-reported since commenters
// have no account.
type Comment struct {
	ID        string
	VersionID string
	Author    string
	Email     string
	Content   string
	CreatedAt time.Time
}
