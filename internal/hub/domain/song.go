package domain

import "time"

// Song is a track within a project.
type Song struct {
	ID        string
	ProjectID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Version is one uploaded or referenced rendition of a song (a mix, a
// master, a demo take). FileURL is either a path under the local uploads
// directory or an external audio reference.
type Version struct {
	ID        string
	SongID    string
	Name      string
	FileURL   string
	CreatedAt time.Time
}
