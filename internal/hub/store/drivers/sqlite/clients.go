package sqlite

import (
	"context"
	"database/sql"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, user_id, name, email, phone, artist_name, image_url, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var (
		c          domain.Client
		phone      sql.NullString
		artistName sql.NullString
		imageURL   sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email,
		&phone, &artistName, &imageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.Phone = mapNullString(phone)
	c.ArtistName = mapNullString(artistName)
	c.ImageURL = mapNullString(imageURL)
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context, ownerID string) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) GetClient(ctx context.Context, ownerID, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ? AND user_id = ?`, id, ownerID)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, user_id, name, email, phone, artist_name, image_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.Email,
		mapStringNull(c.Phone), mapStringNull(c.ArtistName), mapStringNull(c.ImageURL))
	return mapConstraint(err)
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients
		 SET name = ?, email = ?, phone = ?, artist_name = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		c.Name, c.Email, mapStringNull(c.Phone), mapStringNull(c.ArtistName), mapStringNull(c.ImageURL),
		c.ID, c.UserID)
	if err != nil {
		return mapConstraint(err)
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

func (r *clientsRepo) DeleteClient(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM clients WHERE id = ? AND user_id = ?`, id, ownerID)
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

func (r *clientsRepo) CountClients(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clients WHERE user_id = ?`, ownerID).Scan(&count)
	return count, err
}
