package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/internal/hub/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestSongs(t *testing.T) (*SongService, *sqlite.Store) {
	t.Helper()
	st := newTestStore(t)
	return &SongService{Store: st, Usage: &UsageService{Store: st}}, st
}

func TestSongCreateWithVersions(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	user := seedUser(t, st, "alice@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	song, err := svc.Create(ctx, user, project.ID, "  Opening Track  ", []VersionInput{
		{Name: "Demo", FileURL: ""},
		{Name: "Rough Mix", FileURL: "/v1/uploads/abc"},
	})
	require.NoError(t, err)
	require.Equal(t, "Opening Track", song.Name)
	require.Len(t, song.Versions, 2)

	list, err := svc.ListForProject(ctx, user.ID, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Versions, 2)
}

func TestSongCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	user := seedUser(t, st, "bob@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	_, err := svc.Create(ctx, user, project.ID, "   ", nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	// A nameless version aborts the whole transaction; nothing is left behind.
	_, err = svc.Create(ctx, user, project.ID, "Track", []VersionInput{{Name: ""}})
	require.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.ListForProject(ctx, user.ID, project.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestSongOwnershipThroughProjectChain(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	owner := seedUser(t, st, "carol@example.com", "password123", domain.TierFree)
	intruder := seedUser(t, st, "dave@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, owner.ID, "c@example.com")
	project := seedProject(t, st, owner.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")
	version := seedVersion(t, st, song.ID, "Mix", "")

	_, err := svc.ListForProject(ctx, intruder.ID, project.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Rename(ctx, intruder.ID, song.ID, "Hijacked")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, intruder.ID, song.ID), store.ErrNotFound)
	require.ErrorIs(t, svc.DeleteVersion(ctx, intruder.ID, version.ID), store.ErrNotFound)

	_, err = svc.AddVersion(ctx, intruder, song.ID, VersionInput{Name: "Injected"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSongRename(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	user := seedUser(t, st, "erin@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Working Title")

	renamed, err := svc.Rename(ctx, user.ID, song.ID, "Final Title")
	require.NoError(t, err)
	require.Equal(t, "Final Title", renamed.Name)

	_, err = svc.Rename(ctx, user.ID, song.ID, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSongAddAndDeleteVersion(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	user := seedUser(t, st, "frank@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")

	version, err := svc.AddVersion(ctx, user, song.ID, VersionInput{Name: "Master", FileURL: "/v1/uploads/xyz"})
	require.NoError(t, err)
	require.Equal(t, song.ID, version.SongID)

	require.NoError(t, svc.DeleteVersion(ctx, user.ID, version.ID))
	require.ErrorIs(t, svc.DeleteVersion(ctx, user.ID, version.ID), store.ErrNotFound)
}

func TestSongStorageGate(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	user := seedUser(t, st, "grace@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Filler")

	// Fill storage to the free-tier ceiling.
	limits := domain.TierFree.Limits()
	for i := 0; i < limits.MaxStorageMB/domain.EstimatedMBPerFile; i++ {
		seedVersion(t, st, song.ID, fmt.Sprintf("Mix %d", i), fmt.Sprintf("/v1/uploads/%d", i))
	}

	_, err := svc.AddVersion(ctx, user, song.ID, VersionInput{Name: "One Too Many", FileURL: "/v1/uploads/over"})
	require.ErrorIs(t, err, ErrLimitReached)

	// A version without a file is just metadata and always fits.
	_, err = svc.AddVersion(ctx, user, song.ID, VersionInput{Name: "Just An Idea"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, user, project.ID, "New Song", []VersionInput{{Name: "Mix", FileURL: "/v1/uploads/more"}})
	require.ErrorIs(t, err, ErrLimitReached)
}

func TestSongDeleteRemovesVersions(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestSongs(t)

	user := seedUser(t, st, "heidi@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")
	song := seedSong(t, st, project.ID, "Track 1")
	version := seedVersion(t, st, song.ID, "Mix", "")

	require.NoError(t, svc.Delete(ctx, user.ID, song.ID))

	_, err := st.Songs().GetVersionForOwner(ctx, user.ID, version.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
