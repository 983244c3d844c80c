package service

import (
	"context"
	"strings"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/idx"
)

// ClientInput is the caller-supplied part of a client record.
type ClientInput struct {
	Name       string
	Email      string
	Phone      string
	ArtistName string
	ImageURL   string
}

func (in ClientInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ClientService manages an account's client roster. Creation is gated by the
// tier's client ceiling.
type ClientService struct {
	Store store.Store
	Usage *UsageService
}

func (s *ClientService) List(ctx context.Context, ownerID string) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx, ownerID)
}

func (s *ClientService) Get(ctx context.Context, ownerID, id string) (domain.Client, error) {
	return s.Store.Clients().GetClient(ctx, ownerID, id)
}

// Create adds a client after checking the tier ceiling. store.ErrAlreadyExists
// passes through when the owner already has a client with that email.
func (s *ClientService) Create(ctx context.Context, user domain.User, in ClientInput) (domain.Client, error) {
	if err := in.validate(); err != nil {
		return domain.Client{}, err
	}
	if err := s.Usage.EnsureCanAddClient(ctx, user); err != nil {
		return domain.Client{}, err
	}

	client := domain.Client{
		ID:         idx.New().String(),
		UserID:     user.ID,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:      strings.TrimSpace(in.Phone),
		ArtistName: strings.TrimSpace(in.ArtistName),
		ImageURL:   strings.TrimSpace(in.ImageURL),
	}
	if err := s.Store.Clients().CreateClient(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, ownerID, id string, in ClientInput) (domain.Client, error) {
	if err := in.validate(); err != nil {
		return domain.Client{}, err
	}

	client := domain.Client{
		ID:         id,
		UserID:     ownerID,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:      strings.TrimSpace(in.Phone),
		ArtistName: strings.TrimSpace(in.ArtistName),
		ImageURL:   strings.TrimSpace(in.ImageURL),
	}
	if err := s.Store.Clients().UpdateClient(ctx, client); err != nil {
		return domain.Client{}, err
	}
	return s.Store.Clients().GetClient(ctx, ownerID, id)
}

// Delete removes a client and, via FK cascade, its projects and everything
// under them.
func (s *ClientService) Delete(ctx context.Context, ownerID, id string) error {
	return s.Store.Clients().DeleteClient(ctx, ownerID, id)
}
