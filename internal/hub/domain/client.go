package domain

import "time"

// Client is a customer of an account owner. Email is unique per owner.
type Client struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Phone      string
	ArtistName string
	ImageURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
