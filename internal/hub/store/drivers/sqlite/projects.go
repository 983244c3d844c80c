package sqlite

import (
	"context"
	"database/sql"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, user_id, client_id, name, description, status, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (domain.Project, error) {
	var (
		p    domain.Project
		desc sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.ClientID, &p.Name, &desc, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, err
	}
	p.Description = mapNullString(desc)
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context, ownerID string) ([]store.ProjectWithClient, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.user_id, p.client_id, p.name, p.description, p.status, p.created_at, p.updated_at,
		        c.id, c.user_id, c.name, c.email, c.phone, c.artist_name, c.image_url, c.created_at, c.updated_at
		 FROM projects p
		 JOIN clients c ON c.id = p.client_id
		 WHERE p.user_id = ?
		 ORDER BY p.created_at DESC, p.id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.ProjectWithClient
	for rows.Next() {
		var (
			p          domain.Project
			c          domain.Client
			desc       sql.NullString
			phone      sql.NullString
			artistName sql.NullString
			imageURL   sql.NullString
		)
		err := rows.Scan(
			&p.ID, &p.UserID, &p.ClientID, &p.Name, &desc, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&c.ID, &c.UserID, &c.Name, &c.Email, &phone, &artistName, &imageURL, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.Description = mapNullString(desc)
		c.Phone = mapNullString(phone)
		c.ArtistName = mapNullString(artistName)
		c.ImageURL = mapNullString(imageURL)
		out = append(out, store.ProjectWithClient{Project: p, Client: c})
	}
	return out, rows.Err()
}

func (r *projectsRepo) GetProject(ctx context.Context, ownerID, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ? AND user_id = ?`, id, ownerID)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, client_id, name, description, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.ClientID, p.Name, mapStringNull(p.Description), p.Status)
	return mapConstraint(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects
		 SET client_id = ?, name = ?, description = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		p.ClientID, p.Name, mapStringNull(p.Description), p.Status, p.ID, p.UserID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *projectsRepo) DeleteProject(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM projects WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *projectsRepo) CountProjects(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE user_id = ?`, ownerID).Scan(&count)
	return count, err
}
