package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/internal/hub/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestShares(t *testing.T) (*ShareService, *CommentService, *sqlite.Store) {
	t.Helper()
	st := newTestStore(t)
	shares := &ShareService{Store: st, BaseURL: "http://localhost:8080"}
	return shares, &CommentService{Store: st}, st
}

// tokenFromShareURL pulls the raw token out of a share URL of the form
// {base}/share/{projectID}/{token}.
func tokenFromShareURL(t *testing.T, shareURL string) string {
	t.Helper()
	idx := strings.LastIndex(shareURL, "/")
	require.Greater(t, idx, -1)
	return shareURL[idx+1:]
}

func TestShareLinkRoundTrip(t *testing.T) {
	ctx := context.Background()
	shares, _, st := newTestShares(t)

	user := seedUser(t, st, "alice@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")
	seedVersion(t, st, song.ID, "Mix", "/v1/uploads/abc")

	link, shareURL, err := shares.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	require.True(t, link.Active)
	require.Contains(t, shareURL, "/share/"+project.ID+"/")

	token := tokenFromShareURL(t, shareURL)
	require.NotEmpty(t, token)
	// 32 random bytes, base64url without padding.
	require.Len(t, token, 43)
	require.NotEqual(t, token, link.TokenHash, "the raw token is never stored")

	shared, err := shares.Resolve(ctx, project.ID, token)
	require.NoError(t, err)
	require.Equal(t, project.ID, shared.Project.ID)
	require.Len(t, shared.Songs, 1)
	require.Len(t, shared.Songs[0].Versions, 1)
	require.Empty(t, shared.Comments)
}

func TestShareLinkFailuresAreUniform(t *testing.T) {
	ctx := context.Background()
	shares, _, st := newTestShares(t)

	user := seedUser(t, st, "bob@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	_, shareURL, err := shares.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	token := tokenFromShareURL(t, shareURL)

	t.Run("wrong token", func(t *testing.T) {
		_, err := shares.Resolve(ctx, project.ID, "wrong-token")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := shares.Resolve(ctx, "no-such-project", token)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("token bound to its project", func(t *testing.T) {
		otherProject := seedProject(t, st, user.ID, client.ID, "Other")
		_, err := shares.Resolve(ctx, otherProject.ID, token)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestShareLinkRevocation(t *testing.T) {
	ctx := context.Background()
	shares, _, st := newTestShares(t)

	user := seedUser(t, st, "carol@example.com", "password123", domain.TierFree)
	intruder := seedUser(t, st, "dave@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	link, shareURL, err := shares.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	token := tokenFromShareURL(t, shareURL)

	// Only the owner may revoke.
	require.ErrorIs(t, shares.Revoke(ctx, intruder.ID, link.ID), store.ErrNotFound)

	require.NoError(t, shares.Revoke(ctx, user.ID, link.ID))
	_, err = shares.Resolve(ctx, project.ID, token)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestShareLinkExpiry(t *testing.T) {
	ctx := context.Background()
	_, _, st := newTestShares(t)

	user := seedUser(t, st, "erin@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	expired := &ShareService{Store: st, BaseURL: "http://localhost:8080", TTL: time.Nanosecond}
	_, shareURL, err := expired.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	token := tokenFromShareURL(t, shareURL)

	time.Sleep(10 * time.Millisecond)

	_, err = expired.Resolve(ctx, project.ID, token)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCommentViaShare(t *testing.T) {
	ctx := context.Background()
	shares, comments, st := newTestShares(t)

	user := seedUser(t, st, "frank@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")
	version := seedVersion(t, st, song.ID, "Mix", "/v1/uploads/abc")

	_, shareURL, err := shares.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	token := tokenFromShareURL(t, shareURL)

	comment, err := comments.CreateViaShare(ctx, project.ID, token, version.ID,
		"  Label A&R  ", "AR@Label.COM", "Love the bridge, can the chorus come in earlier?")
	require.NoError(t, err)
	require.Equal(t, "Label A&R", comment.Author)
	require.Equal(t, "ar@label.com", comment.Email)

	// Both the shared view and the owner's listing see it.
	shared, err := shares.Resolve(ctx, project.ID, token)
	require.NoError(t, err)
	require.Len(t, shared.Comments, 1)

	owned, err := comments.ListForProject(ctx, user.ID, project.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, comment.ID, owned[0].ID)
}

func TestCommentViaShareValidation(t *testing.T) {
	ctx := context.Background()
	shares, comments, st := newTestShares(t)

	user := seedUser(t, st, "grace@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")
	version := seedVersion(t, st, song.ID, "Mix", "")

	_, shareURL, err := shares.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	token := tokenFromShareURL(t, shareURL)

	t.Run("requires author and content", func(t *testing.T) {
		_, err := comments.CreateViaShare(ctx, project.ID, token, version.ID, "", "", "text")
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = comments.CreateViaShare(ctx, project.ID, token, version.ID, "Someone", "", "   ")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("caps content length", func(t *testing.T) {
		_, err := comments.CreateViaShare(ctx, project.ID, token, version.ID,
			"Someone", "", strings.Repeat("a", MaxCommentLength+1))
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects invalid share token", func(t *testing.T) {
		_, err := comments.CreateViaShare(ctx, project.ID, "bad-token", version.ID, "Someone", "", "text")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rejects version outside shared project", func(t *testing.T) {
		otherProject := seedProject(t, st, user.ID, client.ID, "Other")
		otherSong := seedSong(t, st, otherProject.ID, "Elsewhere")
		otherVersion := seedVersion(t, st, otherSong.ID, "Mix", "")

		_, err := comments.CreateViaShare(ctx, project.ID, token, otherVersion.ID, "Someone", "", "text")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestCommentListNewestFirst(t *testing.T) {
	ctx := context.Background()
	shares, comments, st := newTestShares(t)

	user := seedUser(t, st, "heidi@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")
	version := seedVersion(t, st, song.ID, "Mix", "")

	_, shareURL, err := shares.CreateLink(ctx, user.ID, project.ID)
	require.NoError(t, err)
	token := tokenFromShareURL(t, shareURL)

	// created_at has second resolution; the monotonic ULID id breaks ties.
	first, err := comments.CreateViaShare(ctx, project.ID, token, version.ID, "A", "", "first")
	require.NoError(t, err)
	second, err := comments.CreateViaShare(ctx, project.ID, token, version.ID, "B", "", "second")
	require.NoError(t, err)

	list, err := comments.ListForProject(ctx, user.ID, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}
