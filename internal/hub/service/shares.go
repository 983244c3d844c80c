package service

import (
	"context"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/Chickencurry27/artisthub/pkg/idx"
)

// DefaultShareTTL is how long a share link stays valid.
const DefaultShareTTL = 30 * 24 * time.Hour

// SharedProject is the read-only view a share link exposes.
type SharedProject struct {
	Project  domain.Project
	Songs    []store.SongWithVersions
	Comments []domain.Comment
}

// ShareService issues and resolves project share links. Only a fingerprint
// of the share token is stored; the raw token is returned once at creation
// and then lives in the share URL.
type ShareService struct {
	Store store.Store

	// BaseURL is the public origin used to build share URLs.
	BaseURL string

	// TTL defaults to DefaultShareTTL when zero.
	TTL time.Duration
}

func (s *ShareService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultShareTTL
}

// CreateLink mints a share link for one of the owner's projects and returns
// the link record plus the share URL carrying the raw token.
func (s *ShareService) CreateLink(ctx context.Context, ownerID, projectID string) (domain.ShareLink, string, error) {
	project, err := s.Store.Projects().GetProject(ctx, ownerID, projectID)
	if err != nil {
		return domain.ShareLink{}, "", err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.ShareLink{}, "", err
	}

	link := domain.ShareLink{
		ID:        idx.New().String(),
		ProjectID: project.ID,
		TokenHash: cryptox.FingerprintToken(token),
		Active:    true,
		ExpiresAt: time.Now().Add(s.ttl()),
	}
	if err := s.Store.ShareLinks().CreateShareLink(ctx, link); err != nil {
		return domain.ShareLink{}, "", err
	}

	shareURL := s.BaseURL + "/share/" + project.ID + "/" + token
	return link, shareURL, nil
}

// Revoke deactivates one of the owner's share links.
func (s *ShareService) Revoke(ctx context.Context, ownerID, linkID string) error {
	link, err := s.Store.ShareLinks().GetShareLinkForOwner(ctx, ownerID, linkID)
	if err != nil {
		return err
	}
	return s.Store.ShareLinks().DeactivateShareLink(ctx, link.ID)
}

// Resolve validates a share token against a project and returns the shared
// view. Unknown projects, unknown tokens, revoked links, and expired links
// all read as store.ErrNotFound so the public endpoint leaks nothing.
func (s *ShareService) Resolve(ctx context.Context, projectID, token string) (SharedProject, error) {
	if _, err := s.Store.ShareLinks().GetUsableShareLink(ctx, projectID, cryptox.FingerprintToken(token)); err != nil {
		return SharedProject{}, err
	}

	project, err := s.Store.Projects().GetProjectByID(ctx, projectID)
	if err != nil {
		return SharedProject{}, err
	}
	songs, err := s.Store.Songs().ListSongs(ctx, projectID)
	if err != nil {
		return SharedProject{}, err
	}
	comments, err := s.Store.Comments().ListProjectComments(ctx, projectID)
	if err != nil {
		return SharedProject{}, err
	}

	return SharedProject{Project: project, Songs: songs, Comments: comments}, nil
}
