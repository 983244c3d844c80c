package store

import (
	"context"
	"errors"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement it. Sub-repositories keep concerns tidy and let
// tests swap a single repo.
type Store interface {
	Users() Users
	Sessions() Sessions
	Clients() Clients
	Projects() Projects
	Songs() Songs
	ShareLinks() ShareLinks
	Comments() Comments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback() the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used at login and password-reset request time.
	// Lookup is exact; emails are stored case-sensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByResetTokenHash resolves an outstanding reset token by its
	// fingerprint. The unique index on the hash column makes this an exact,
	// indexed lookup.
	GetUserByResetTokenHash(ctx context.Context, hash string) (domain.User, error)

	// CreateUser inserts a new user. Returns ErrAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	UpdateName(ctx context.Context, userID, name string) error

	// SetResetToken stores a reset token fingerprint and absolute expiry,
	// overwriting any prior outstanding token.
	SetResetToken(ctx context.Context, userID, hash string, expiresAt time.Time) error

	// ClearResetToken nulls both reset-token fields.
	ClearResetToken(ctx context.Context, userID string) error

	// ClearExpiredResetTokens is housekeeping; expiry is enforced lazily at
	// reset time regardless.
	ClearExpiredResetTokens(ctx context.Context) error

	// UpdatePasswordAndClearResetToken sets the password hash and nulls
	// both reset-token fields in a single statement so the three fields
	// can never be observed out of step.
	UpdatePasswordAndClearResetToken(ctx context.Context, userID, newHash string) error

	UpdateTier(ctx context.Context, userID string, tier domain.Tier) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionWithUser returns the session and its owning user.
	GetSessionWithUser(ctx context.Context, id string) (domain.Session, domain.User, error)

	// RefreshSession re-stamps the expiry of a session.
	RefreshSession(ctx context.Context, id string, expiresAt time.Time) error

	// DeleteSession removes a session; deleting a nonexistent session is
	// not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteUserSessions removes every session of a user (logout
	// everywhere; password reset).
	DeleteUserSessions(ctx context.Context, userID string) error

	// DeleteExpiredSessions is housekeeping; expiry is enforced lazily at
	// validation time regardless.
	DeleteExpiredSessions(ctx context.Context) error
}

type Clients interface {
	ListClients(ctx context.Context, ownerID string) ([]domain.Client, error)
	GetClient(ctx context.Context, ownerID, id string) (domain.Client, error)

	// CreateClient inserts a client. Returns ErrAlreadyExists when the
	// owner already has a client with the same email.
	CreateClient(ctx context.Context, c domain.Client) error

	UpdateClient(ctx context.Context, c domain.Client) error
	DeleteClient(ctx context.Context, ownerID, id string) error
	CountClients(ctx context.Context, ownerID string) (int, error)
}

// ProjectWithClient is a project joined with the client it belongs to.
type ProjectWithClient struct {
	domain.Project
	Client domain.Client
}

type Projects interface {
	ListProjects(ctx context.Context, ownerID string) ([]ProjectWithClient, error)
	GetProject(ctx context.Context, ownerID, id string) (domain.Project, error)

	// GetProjectByID resolves a project regardless of owner. Used by the
	// share-link flow where the token, not the session, authorizes access.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	CreateProject(ctx context.Context, p domain.Project) error
	UpdateProject(ctx context.Context, p domain.Project) error
	DeleteProject(ctx context.Context, ownerID, id string) error
	CountProjects(ctx context.Context, ownerID string) (int, error)
}

// SongWithVersions is a song joined with all of its versions.
type SongWithVersions struct {
	domain.Song
	Versions []domain.Version
}

type Songs interface {
	ListSongs(ctx context.Context, projectID string) ([]SongWithVersions, error)

	// GetSongForOwner resolves a song only when its project belongs to
	// ownerID.
	GetSongForOwner(ctx context.Context, ownerID, songID string) (domain.Song, error)

	CreateSong(ctx context.Context, s domain.Song) error
	UpdateSongName(ctx context.Context, songID, name string) error
	DeleteSong(ctx context.Context, songID string) error

	CreateVersion(ctx context.Context, v domain.Version) error
	GetVersionForOwner(ctx context.Context, ownerID, versionID string) (domain.Version, error)
	DeleteVersion(ctx context.Context, versionID string) error

	// DeleteSongVersions removes all versions of a song (replace-on-update
	// semantics).
	DeleteSongVersions(ctx context.Context, songID string) error

	// CountStoredVersions counts the owner's versions carrying a file URL;
	// the usage evaluator multiplies this by a flat per-file estimate.
	CountStoredVersions(ctx context.Context, ownerID string) (int, error)
}

type ShareLinks interface {
	CreateShareLink(ctx context.Context, l domain.ShareLink) error

	// GetUsableShareLink returns an active, unexpired link for the project
	// by token fingerprint.
	GetUsableShareLink(ctx context.Context, projectID, tokenHash string) (domain.ShareLink, error)

	GetShareLinkForOwner(ctx context.Context, ownerID, id string) (domain.ShareLink, error)
	DeactivateShareLink(ctx context.Context, id string) error
	DeleteExpiredShareLinks(ctx context.Context) error
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) error

	// ListProjectComments returns feedback across all versions of a
	// project, newest first.
	ListProjectComments(ctx context.Context, projectID string) ([]domain.Comment, error)

	// GetVersionProjectID resolves which project a version belongs to, for
	// validating that shared-link feedback targets the shared project.
	GetVersionProjectID(ctx context.Context, versionID string) (string, error)
}
