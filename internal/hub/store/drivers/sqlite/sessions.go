package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
)

type sessionsRepo struct {
	db dbtx
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`,
		s.ID, s.UserID, s.ExpiresAt.UTC())
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionWithUser(ctx context.Context, id string) (domain.Session, domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT s.id, s.user_id, s.expires_at, s.created_at,
		        u.id, u.email, u.name, u.password_hash, u.tier,
		        u.reset_token_hash, u.reset_token_expiry, u.created_at, u.updated_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = ?`, id)

	var (
		s          domain.Session
		u          domain.User
		tier       string
		resetHash  sql.NullString
		resetUntil sql.NullTime
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.ExpiresAt, &s.CreatedAt,
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &tier,
		&resetHash, &resetUntil, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, domain.User{}, mapNotFound(err)
	}
	u.Tier = domain.Tier(tier)
	u.ResetTokenHash = mapNullString(resetHash)
	u.ResetTokenExpiry = mapNullTimePtr(resetUntil)
	return s, u, nil
}

func (r *sessionsRepo) RefreshSession(ctx context.Context, id string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET expires_at = ? WHERE id = ?`,
		expiresAt.UTC(), id)
	return err
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

func (r *sessionsRepo) DeleteUserSessions(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
