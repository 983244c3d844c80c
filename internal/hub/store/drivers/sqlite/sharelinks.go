package sqlite

import (
	"context"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
)

type shareLinksRepo struct {
	db dbtx
}

func (r *shareLinksRepo) CreateShareLink(ctx context.Context, l domain.ShareLink) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO share_links (id, project_id, token_hash, active, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.ProjectID, l.TokenHash, l.Active, l.ExpiresAt.UTC())
	return mapConstraint(err)
}

func (r *shareLinksRepo) GetUsableShareLink(ctx context.Context, projectID, tokenHash string) (domain.ShareLink, error) {
	var l domain.ShareLink
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, token_hash, active, expires_at, created_at
		 FROM share_links
		 WHERE project_id = ? AND token_hash = ? AND active = TRUE AND expires_at > ?`,
		projectID, tokenHash, time.Now().UTC()).
		Scan(&l.ID, &l.ProjectID, &l.TokenHash, &l.Active, &l.ExpiresAt, &l.CreatedAt)
	if err != nil {
		return domain.ShareLink{}, mapNotFound(err)
	}
	return l, nil
}

func (r *shareLinksRepo) GetShareLinkForOwner(ctx context.Context, ownerID, id string) (domain.ShareLink, error) {
	var l domain.ShareLink
	err := r.db.QueryRowContext(ctx,
		`SELECT l.id, l.project_id, l.token_hash, l.active, l.expires_at, l.created_at
		 FROM share_links l
		 JOIN projects p ON p.id = l.project_id
		 WHERE l.id = ? AND p.user_id = ?`, id, ownerID).
		Scan(&l.ID, &l.ProjectID, &l.TokenHash, &l.Active, &l.ExpiresAt, &l.CreatedAt)
	if err != nil {
		return domain.ShareLink{}, mapNotFound(err)
	}
	return l, nil
}

func (r *shareLinksRepo) DeactivateShareLink(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE share_links SET active = FALSE WHERE id = ?`, id)
	return err
}

func (r *shareLinksRepo) DeleteExpiredShareLinks(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM share_links WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
