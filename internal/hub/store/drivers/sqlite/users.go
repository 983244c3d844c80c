package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, password_hash, tier, reset_token_hash, reset_token_expiry, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u          domain.User
		tier       string
		resetHash  sql.NullString
		resetUntil sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &tier,
		&resetHash, &resetUntil, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Tier = domain.Tier(tier)
	u.ResetTokenHash = mapNullString(resetHash)
	u.ResetTokenExpiry = mapNullTimePtr(resetUntil)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByResetTokenHash(ctx context.Context, hash string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_token_hash = ?`, hash)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, tier) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, string(u.Tier))
	return mapConstraint(err)
}

func (r *usersRepo) UpdateName(ctx context.Context, userID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, userID)
	return err
}

func (r *usersRepo) SetResetToken(ctx context.Context, userID, hash string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token_hash = ?, reset_token_expiry = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		hash, expiresAt.UTC(), userID)
	return err
}

func (r *usersRepo) ClearResetToken(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET reset_token_hash = NULL, reset_token_expiry = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		userID)
	return err
}

func (r *usersRepo) ClearExpiredResetTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET reset_token_hash = NULL, reset_token_expiry = NULL
		 WHERE reset_token_expiry IS NOT NULL AND reset_token_expiry <= ?`,
		time.Now().UTC())
	return err
}

func (r *usersRepo) UpdatePasswordAndClearResetToken(ctx context.Context, userID, newHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET password_hash = ?, reset_token_hash = NULL, reset_token_expiry = NULL, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		newHash, userID)
	return err
}

func (r *usersRepo) UpdateTier(ctx context.Context, userID string, tier domain.Tier) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET tier = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(tier), userID)
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
