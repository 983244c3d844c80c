package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "hub.db"))
	st, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedAccount(t *testing.T, st *Store, email string) (domain.User, domain.Client, domain.Project) {
	t.Helper()
	ctx := context.Background()

	user := domain.User{ID: idx.New().String(), Email: email, Name: "Owner", PasswordHash: "hash", Tier: domain.TierFree}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	client := domain.Client{ID: idx.New().String(), UserID: user.ID, Name: "Client", Email: "client-" + email}
	require.NoError(t, st.Clients().CreateClient(ctx, client))

	project := domain.Project{ID: idx.New().String(), UserID: user.ID, ClientID: client.ID, Name: "Project", Status: domain.ProjectStatusActive}
	require.NoError(t, st.Projects().CreateProject(ctx, project))

	return user, client, project
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestPing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}

func TestUniqueConstraintMapsToAlreadyExists(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := domain.User{ID: idx.New().String(), Email: "dup@example.com", Name: "A", PasswordHash: "h", Tier: domain.TierFree}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	clone := user
	clone.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, clone), store.ErrAlreadyExists)
}

func TestMissingRowsMapToNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Users().UpdateTier(ctx, "missing", domain.TierPro), store.ErrNotFound)

	_, _, err = st.Sessions().GetSessionWithUser(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Clients().GetClient(ctx, "owner", "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Clients().DeleteClient(ctx, "owner", "missing"), store.ErrNotFound)
}

func TestWithTxCommit(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := domain.User{ID: idx.New().String(), Email: "tx@example.com", Name: "A", PasswordHash: "h", Tier: domain.TierFree}

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, user)
	})
	require.NoError(t, err)

	got, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)
}

func TestWithTxRollbackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := domain.User{ID: idx.New().String(), Email: "rollback@example.com", Name: "A", PasswordHash: "h", Tier: domain.TierFree}
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound, "the insert must not survive the rollback")
}

func TestNestedTxRejected(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		return err
	})
	require.Error(t, err)
}

func TestResetTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user, _, _ := seedAccount(t, st, "reset@example.com")

	require.NoError(t, st.Users().SetResetToken(ctx, user.ID, "fingerprint", time.Now().Add(time.Hour)))

	got, err := st.Users().GetUserByResetTokenHash(ctx, "fingerprint")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.ResetTokenExpiry)

	require.NoError(t, st.Users().UpdatePasswordAndClearResetToken(ctx, user.ID, "new-hash"))

	cleared, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", cleared.PasswordHash)
	require.Empty(t, cleared.ResetTokenHash)
	require.Nil(t, cleared.ResetTokenExpiry)
}

func TestClearExpiredResetTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	stale, _, _ := seedAccount(t, st, "stale@example.com")
	fresh, _, _ := seedAccount(t, st, "fresh@example.com")

	require.NoError(t, st.Users().SetResetToken(ctx, stale.ID, "stale-hash", time.Now().Add(-time.Minute)))
	require.NoError(t, st.Users().SetResetToken(ctx, fresh.ID, "fresh-hash", time.Now().Add(time.Hour)))

	require.NoError(t, st.Users().ClearExpiredResetTokens(ctx))

	_, err := st.Users().GetUserByResetTokenHash(ctx, "stale-hash")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByResetTokenHash(ctx, "fresh-hash")
	require.NoError(t, err)
}

func TestDeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user, _, _ := seedAccount(t, st, "sessions@example.com")

	expired := domain.Session{ID: "expired", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Hour)}
	live := domain.Session{ID: "live", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, st.Sessions().CreateSession(ctx, expired))
	require.NoError(t, st.Sessions().CreateSession(ctx, live))

	require.NoError(t, st.Sessions().DeleteExpiredSessions(ctx))

	_, _, err := st.Sessions().GetSessionWithUser(ctx, "expired")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, _, err = st.Sessions().GetSessionWithUser(ctx, "live")
	require.NoError(t, err)
}

func TestUserDeleteCascadesEverything(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user, client, project := seedAccount(t, st, "cascade@example.com")

	song := domain.Song{ID: idx.New().String(), ProjectID: project.ID, Name: "Track"}
	require.NoError(t, st.Songs().CreateSong(ctx, song))
	version := domain.Version{ID: idx.New().String(), SongID: song.ID, Name: "Mix", FileURL: "/v1/uploads/x"}
	require.NoError(t, st.Songs().CreateVersion(ctx, version))
	link := domain.ShareLink{ID: idx.New().String(), ProjectID: project.ID, TokenHash: "hash", Active: true, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, st.ShareLinks().CreateShareLink(ctx, link))
	comment := domain.Comment{ID: idx.New().String(), VersionID: version.ID, Author: "A", Content: "Nice"}
	require.NoError(t, st.Comments().CreateComment(ctx, comment))

	// Deleting the client rips out the whole chain through FK cascades.
	require.NoError(t, st.Clients().DeleteClient(ctx, user.ID, client.ID))

	_, err := st.Projects().GetProjectByID(ctx, project.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	songs, err := st.Songs().ListSongs(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, songs)

	comments, err := st.Comments().ListProjectComments(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, comments)
}

func TestCountStoredVersionsPerOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	owner, _, project := seedAccount(t, st, "count@example.com")
	other, _, otherProject := seedAccount(t, st, "other@example.com")

	song := domain.Song{ID: idx.New().String(), ProjectID: project.ID, Name: "Track"}
	require.NoError(t, st.Songs().CreateSong(ctx, song))
	otherSong := domain.Song{ID: idx.New().String(), ProjectID: otherProject.ID, Name: "Track"}
	require.NoError(t, st.Songs().CreateSong(ctx, otherSong))

	// Two stored files and one bare metadata version for the owner, plus a
	// stored file belonging to someone else.
	for i, fileURL := range []string{"/v1/uploads/a", "/v1/uploads/b", ""} {
		v := domain.Version{ID: idx.New().String(), SongID: song.ID, Name: fmt.Sprintf("V%d", i), FileURL: fileURL}
		require.NoError(t, st.Songs().CreateVersion(ctx, v))
	}
	require.NoError(t, st.Songs().CreateVersion(ctx, domain.Version{
		ID: idx.New().String(), SongID: otherSong.ID, Name: "Theirs", FileURL: "/v1/uploads/c",
	}))

	count, err := st.Songs().CountStoredVersions(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	otherCount, err := st.Songs().CountStoredVersions(ctx, other.ID)
	require.NoError(t, err)
	require.Equal(t, 1, otherCount)
}

func TestShareLinkUsablePredicate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, _, project := seedAccount(t, st, "share@example.com")

	link := domain.ShareLink{ID: idx.New().String(), ProjectID: project.ID, TokenHash: "hash", Active: true, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, st.ShareLinks().CreateShareLink(ctx, link))

	_, err := st.ShareLinks().GetUsableShareLink(ctx, project.ID, "hash")
	require.NoError(t, err)

	t.Run("wrong hash", func(t *testing.T) {
		_, err := st.ShareLinks().GetUsableShareLink(ctx, project.ID, "other")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("deactivated", func(t *testing.T) {
		require.NoError(t, st.ShareLinks().DeactivateShareLink(ctx, link.ID))
		_, err := st.ShareLinks().GetUsableShareLink(ctx, project.ID, "hash")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListClientsOrder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user, _, _ := seedAccount(t, st, "order@example.com")

	// seedAccount already created one client; add two more. created_at has
	// second resolution, the ULID id breaks ties newest first.
	for _, email := range []string{"b@example.com", "c@example.com"} {
		c := domain.Client{ID: idx.New().String(), UserID: user.ID, Name: "C", Email: email}
		require.NoError(t, st.Clients().CreateClient(ctx, c))
	}

	list, err := st.Clients().ListClients(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "c@example.com", list[0].Email)
}
