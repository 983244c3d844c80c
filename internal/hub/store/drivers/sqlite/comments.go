package sqlite

import (
	"context"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
)

type commentsRepo struct {
	db dbtx
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, version_id, author, email, content)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.VersionID, c.Author, c.Email, c.Content)
	return mapConstraint(err)
}

func (r *commentsRepo) ListProjectComments(ctx context.Context, projectID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.version_id, c.author, c.email, c.content, c.created_at
		 FROM comments c
		 JOIN versions v ON v.id = c.version_id
		 JOIN songs s ON s.id = v.song_id
		 WHERE s.project_id = ?
		 ORDER BY c.created_at DESC, c.id DESC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.VersionID, &c.Author, &c.Email, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentsRepo) GetVersionProjectID(ctx context.Context, versionID string) (string, error) {
	var projectID string
	err := r.db.QueryRowContext(ctx,
		`SELECT s.project_id
		 FROM versions v
		 JOIN songs s ON s.id = v.song_id
		 WHERE v.id = ?`, versionID).Scan(&projectID)
	if err != nil {
		return "", mapNotFound(err)
	}
	return projectID, nil
}
