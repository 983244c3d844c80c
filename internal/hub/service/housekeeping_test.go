package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	user := seedUser(t, st, "alice@example.com", "password123", domain.TierFree)
	client := seedClient(t, st, user.ID, "c@example.com")
	project := seedProject(t, st, user.ID, client.ID, "Album")

	// One of each kind of record, expired and live side by side.
	expiredSession := seedSession(t, st, user.ID, time.Now().Add(-time.Hour))
	liveSession := seedSession(t, st, user.ID, time.Now().Add(time.Hour))

	expiredLink := domain.ShareLink{
		ID:        "expired-link",
		ProjectID: project.ID,
		TokenHash: cryptox.FingerprintToken("expired"),
		Active:    true,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, st.ShareLinks().CreateShareLink(ctx, expiredLink))
	liveLink := domain.ShareLink{
		ID:        "live-link",
		ProjectID: project.ID,
		TokenHash: cryptox.FingerprintToken("live"),
		Active:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, st.ShareLinks().CreateShareLink(ctx, liveLink))

	require.NoError(t, st.Users().SetResetToken(ctx, user.ID,
		cryptox.FingerprintToken("stale"), time.Now().Add(-time.Minute)))

	svc := NewHousekeepingService(st, slog.Default(), time.Hour)
	svc.Start()
	svc.Stop() // run() cleans once on startup before honoring the stop

	_, _, err := st.Sessions().GetSessionWithUser(ctx, expiredSession.ID)
	require.Error(t, err)
	_, _, err = st.Sessions().GetSessionWithUser(ctx, liveSession.ID)
	require.NoError(t, err)

	_, err = st.ShareLinks().GetShareLinkForOwner(ctx, user.ID, expiredLink.ID)
	require.Error(t, err)
	_, err = st.ShareLinks().GetShareLinkForOwner(ctx, user.ID, liveLink.ID)
	require.NoError(t, err)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, stored.ResetTokenHash)
}

func TestHousekeepingDefaultInterval(t *testing.T) {
	st := newTestStore(t)
	svc := NewHousekeepingService(st, slog.Default(), 0)
	require.Equal(t, time.Hour, svc.Interval)
}
