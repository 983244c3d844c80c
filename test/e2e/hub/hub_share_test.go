package hub_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/Chickencurry27/artisthub/pkg/hubapi"
	"github.com/stretchr/testify/require"
)

// shareToken pulls the raw token out of a share URL of the form
// {base}/share/{projectID}/{token}.
func shareToken(t *testing.T, shareURL string) string {
	t.Helper()
	idx := strings.LastIndex(shareURL, "/")
	require.Greater(t, idx, -1)
	return shareURL[idx+1:]
}

func TestSharedProjectPage(t *testing.T) {
	ctx := context.Background()
	owner := setupServer(t)
	registerUser(t, owner, "owner@example.com", "Owner")
	_, project := createProject(t, owner)

	song, err := owner.CreateSong(ctx, project.ID, hubapi.SongRequest{
		Name:     "Opening Track",
		Versions: []hubapi.VersionRequest{{Name: "Rough Mix", FileURL: "/v1/uploads/some-file"}},
	})
	require.NoError(t, err)

	link, err := owner.CreateShareLink(ctx, project.ID)
	require.NoError(t, err)
	require.True(t, link.Active)
	token := shareToken(t, link.ShareURL)

	// A visitor with no session reads the shared page.
	visitor := hubapi.NewClient(owner.BaseURL)
	shared, err := visitor.GetSharedProject(ctx, project.ID, token)
	require.NoError(t, err)
	require.Equal(t, project.ID, shared.Project.ID)
	require.Len(t, shared.Songs, 1)
	require.Equal(t, song.ID, shared.Songs[0].ID)
}

func TestSharedPageCommentFlow(t *testing.T) {
	ctx := context.Background()
	owner := setupServer(t)
	registerUser(t, owner, "owner@example.com", "Owner")
	_, project := createProject(t, owner)

	song, err := owner.CreateSong(ctx, project.ID, hubapi.SongRequest{
		Name:     "Track",
		Versions: []hubapi.VersionRequest{{Name: "Mix"}},
	})
	require.NoError(t, err)
	versionID := song.Versions[0].ID

	link, err := owner.CreateShareLink(ctx, project.ID)
	require.NoError(t, err)
	token := shareToken(t, link.ShareURL)

	visitor := hubapi.NewClient(owner.BaseURL)
	comment, err := visitor.PostComment(ctx, project.ID, token, hubapi.CommentRequest{
		VersionID: versionID,
		Author:    "Label A&R",
		Email:     "ar@label.example",
		Content:   "Love the bridge.",
	})
	require.NoError(t, err)
	require.Equal(t, versionID, comment.VersionID)

	// Visible on the shared page and in the owner's feedback list.
	shared, err := visitor.GetSharedProject(ctx, project.ID, token)
	require.NoError(t, err)
	require.Len(t, shared.Comments, 1)

	owned, err := owner.ListComments(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, "Label A&R", owned[0].Author)
}

func TestShareFailuresReadAsNotFound(t *testing.T) {
	ctx := context.Background()
	owner := setupServer(t)
	registerUser(t, owner, "owner@example.com", "Owner")
	_, project := createProject(t, owner)

	link, err := owner.CreateShareLink(ctx, project.ID)
	require.NoError(t, err)
	token := shareToken(t, link.ShareURL)

	visitor := hubapi.NewClient(owner.BaseURL)

	t.Run("wrong token", func(t *testing.T) {
		_, err := visitor.GetSharedProject(ctx, project.ID, "wrong-token")
		requireAPIError(t, err, http.StatusNotFound, hubapi.ErrorCodeNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := visitor.GetSharedProject(ctx, "no-such-project", token)
		requireAPIError(t, err, http.StatusNotFound, hubapi.ErrorCodeNotFound)
	})

	t.Run("after revocation", func(t *testing.T) {
		require.NoError(t, owner.RevokeShareLink(ctx, link.ID))
		_, err := visitor.GetSharedProject(ctx, project.ID, token)
		requireAPIError(t, err, http.StatusNotFound, hubapi.ErrorCodeNotFound)
	})
}

func TestShareLinkOwnership(t *testing.T) {
	ctx := context.Background()
	owner := setupServer(t)
	registerUser(t, owner, "owner@example.com", "Owner")
	_, project := createProject(t, owner)

	link, err := owner.CreateShareLink(ctx, project.ID)
	require.NoError(t, err)

	intruder := hubapi.NewClient(owner.BaseURL)
	_, err = intruder.Register(ctx, hubapi.RegisterRequest{
		Email:    "intruder@example.com",
		Name:     "Intruder",
		Password: testPassword,
	})
	require.NoError(t, err)

	// Someone else can neither share nor revoke the owner's project.
	_, err = intruder.CreateShareLink(ctx, project.ID)
	requireAPIError(t, err, http.StatusNotFound, hubapi.ErrorCodeNotFound)

	err = intruder.RevokeShareLink(ctx, link.ID)
	requireAPIError(t, err, http.StatusNotFound, hubapi.ErrorCodeNotFound)
}

func TestShareCommentValidation(t *testing.T) {
	ctx := context.Background()
	owner := setupServer(t)
	registerUser(t, owner, "owner@example.com", "Owner")
	_, project := createProject(t, owner)

	song, err := owner.CreateSong(ctx, project.ID, hubapi.SongRequest{
		Name:     "Track",
		Versions: []hubapi.VersionRequest{{Name: "Mix"}},
	})
	require.NoError(t, err)
	versionID := song.Versions[0].ID

	link, err := owner.CreateShareLink(ctx, project.ID)
	require.NoError(t, err)
	token := shareToken(t, link.ShareURL)

	visitor := hubapi.NewClient(owner.BaseURL)

	t.Run("missing author", func(t *testing.T) {
		_, err := visitor.PostComment(ctx, project.ID, token, hubapi.CommentRequest{
			VersionID: versionID,
			Content:   "anonymous drive-by",
		})
		requireAPIError(t, err, http.StatusBadRequest, hubapi.ErrorCodeInvalidRequest)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := visitor.PostComment(ctx, project.ID, "bad-token", hubapi.CommentRequest{
			VersionID: versionID,
			Author:    "Someone",
			Content:   "text",
		})
		requireAPIError(t, err, http.StatusNotFound, hubapi.ErrorCodeNotFound)
	})
}
