package service

import (
	"context"
	"strings"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/Chickencurry27/artisthub/pkg/idx"
)

// MaxCommentLength caps feedback size; shared pages are public-ish surfaces.
const MaxCommentLength = 4000

// CommentService records feedback on song versions. Comments arrive through
// a validated share link, so the author has no account; name and email are
// self-reported.
type CommentService struct {
	Store store.Store
}

// CreateViaShare validates the share token, confirms the version belongs to
// the shared project, and records the comment. Every failure reads as
// store.ErrNotFound to the public caller.
func (s *CommentService) CreateViaShare(ctx context.Context, projectID, token, versionID, author, email, content string) (domain.Comment, error) {
	author = strings.TrimSpace(author)
	content = strings.TrimSpace(content)
	if author == "" || content == "" || len(content) > MaxCommentLength {
		return domain.Comment{}, ErrInvalidInput
	}

	if _, err := s.Store.ShareLinks().GetUsableShareLink(ctx, projectID, cryptox.FingerprintToken(token)); err != nil {
		return domain.Comment{}, err
	}

	owningProject, err := s.Store.Comments().GetVersionProjectID(ctx, versionID)
	if err != nil {
		return domain.Comment{}, err
	}
	if owningProject != projectID {
		return domain.Comment{}, store.ErrNotFound
	}

	comment := domain.Comment{
		ID:        idx.New().String(),
		VersionID: versionID,
		Author:    author,
		Email:     strings.TrimSpace(strings.ToLower(email)),
		Content:   content,
	}
	if err := s.Store.Comments().CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// ListForProject returns a project's feedback for its owner, newest first.
func (s *CommentService) ListForProject(ctx context.Context, ownerID, projectID string) ([]domain.Comment, error) {
	if _, err := s.Store.Projects().GetProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.Store.Comments().ListProjectComments(ctx, projectID)
}
