package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/idx"
)

// ProjectInput is the caller-supplied part of a project record.
type ProjectInput struct {
	ClientID    string
	Name        string
	Description string
	Status      string
}

func (in ProjectInput) status() (string, error) {
	switch in.Status {
	case "":
		return domain.ProjectStatusActive, nil
	case domain.ProjectStatusActive, domain.ProjectStatusOnHold, domain.ProjectStatusCompleted:
		return in.Status, nil
	}
	return "", ErrInvalidInput
}

// ProjectService manages projects. Creation is gated by the tier's project
// ceiling, and the referenced client must belong to the same owner.
type ProjectService struct {
	Store store.Store
	Usage *UsageService
}

func (s *ProjectService) List(ctx context.Context, ownerID string) ([]store.ProjectWithClient, error) {
	return s.Store.Projects().ListProjects(ctx, ownerID)
}

func (s *ProjectService) Get(ctx context.Context, ownerID, id string) (domain.Project, error) {
	return s.Store.Projects().GetProject(ctx, ownerID, id)
}

func (s *ProjectService) Create(ctx context.Context, user domain.User, in ProjectInput) (domain.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.ClientID == "" {
		return domain.Project{}, ErrInvalidInput
	}
	status, err := in.status()
	if err != nil {
		return domain.Project{}, err
	}

	// The client must exist and belong to the caller; a foreign client id
	// reads as not found.
	if _, err := s.Store.Clients().GetClient(ctx, user.ID, in.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrInvalidInput
		}
		return domain.Project{}, err
	}

	if err := s.Usage.EnsureCanAddProject(ctx, user); err != nil {
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:          idx.New().String(),
		UserID:      user.ID,
		ClientID:    in.ClientID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
	}
	if err := s.Store.Projects().CreateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, ownerID, id string, in ProjectInput) (domain.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.ClientID == "" {
		return domain.Project{}, ErrInvalidInput
	}
	status, err := in.status()
	if err != nil {
		return domain.Project{}, err
	}

	if _, err := s.Store.Clients().GetClient(ctx, ownerID, in.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrInvalidInput
		}
		return domain.Project{}, err
	}

	project := domain.Project{
		ID:          id,
		UserID:      ownerID,
		ClientID:    in.ClientID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Status:      status,
	}
	if err := s.Store.Projects().UpdateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return s.Store.Projects().GetProject(ctx, ownerID, id)
}

func (s *ProjectService) Delete(ctx context.Context, ownerID, id string) error {
	return s.Store.Projects().DeleteProject(ctx, ownerID, id)
}
