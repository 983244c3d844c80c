package service

import (
	"context"
	"errors"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
)

// ErrLimitReached is returned when a tier ceiling blocks the operation.
var ErrLimitReached = errors.New("limit_reached")

// UsageService evaluates an account's usage against its tier limits. Counts
// are always read fresh; nothing is cached, so a check immediately after a
// create sees the new row.
type UsageService struct {
	Store store.Store
}

// Check reads the user's current usage and evaluates it against the tier.
func (s *UsageService) Check(ctx context.Context, user domain.User) (domain.LimitCheck, error) {
	clients, err := s.Store.Clients().CountClients(ctx, user.ID)
	if err != nil {
		return domain.LimitCheck{}, err
	}
	projects, err := s.Store.Projects().CountProjects(ctx, user.ID)
	if err != nil {
		return domain.LimitCheck{}, err
	}
	files, err := s.Store.Songs().CountStoredVersions(ctx, user.ID)
	if err != nil {
		return domain.LimitCheck{}, err
	}

	return domain.CheckLimits(user.Tier, clients, projects, files*domain.EstimatedMBPerFile), nil
}

// EnsureCanAddClient returns ErrLimitReached when the client ceiling is hit.
func (s *UsageService) EnsureCanAddClient(ctx context.Context, user domain.User) error {
	check, err := s.Check(ctx, user)
	if err != nil {
		return err
	}
	if !check.CanAddClient {
		return ErrLimitReached
	}
	return nil
}

// EnsureCanAddProject returns ErrLimitReached when the project ceiling is hit.
func (s *UsageService) EnsureCanAddProject(ctx context.Context, user domain.User) error {
	check, err := s.Check(ctx, user)
	if err != nil {
		return err
	}
	if !check.CanAddProject {
		return ErrLimitReached
	}
	return nil
}

// EnsureHasStorageSpace returns ErrLimitReached when the storage estimate is
// at the ceiling.
func (s *UsageService) EnsureHasStorageSpace(ctx context.Context, user domain.User) error {
	check, err := s.Check(ctx, user)
	if err != nil {
		return err
	}
	if !check.HasStorageSpace {
		return ErrLimitReached
	}
	return nil
}
