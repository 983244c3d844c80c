package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateAndValidate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}

	user := seedUser(t, st, "alice@example.com", "password123", domain.TierFree)

	session, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.Equal(t, user.ID, session.UserID)

	gotUser, gotSession, err := svc.Validate(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, gotUser.ID)
	require.Equal(t, user.Email, gotUser.Email)
	require.Equal(t, session.ID, gotSession.ID)
	require.False(t, gotSession.Fresh, "a freshly minted session should not need re-stamping")
}

func TestSessionValidateFailsClosed(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}

	t.Run("empty token", func(t *testing.T) {
		_, _, err := svc.Validate(ctx, "")
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, _, err := svc.Validate(ctx, "no-such-session")
		require.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestSessionValidateDeletesExpired(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}

	user := seedUser(t, st, "bob@example.com", "password123", domain.TierFree)
	expired := seedSession(t, st, user.ID, time.Now().Add(-time.Minute))

	_, _, err := svc.Validate(ctx, expired.ID)
	require.ErrorIs(t, err, ErrInvalidSession)

	// The expired row is gone, so even a direct lookup misses.
	_, _, err = svc.Validate(ctx, expired.ID)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionValidateReStampsNearExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st, TTL: time.Hour}

	user := seedUser(t, st, "carol@example.com", "password123", domain.TierFree)

	// Less than half the TTL remaining triggers a re-stamp.
	session := seedSession(t, st, user.ID, time.Now().Add(10*time.Minute))

	_, refreshed, err := svc.Validate(ctx, session.ID)
	require.NoError(t, err)
	require.True(t, refreshed.Fresh)
	require.Greater(t, refreshed.ExpiresAt.Unix(), session.ExpiresAt.Unix())

	// A session with plenty of life left is not touched.
	young := seedSession(t, st, user.ID, time.Now().Add(50*time.Minute))
	_, got, err := svc.Validate(ctx, young.ID)
	require.NoError(t, err)
	require.False(t, got.Fresh)
}

func TestSessionInvalidate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}

	user := seedUser(t, st, "dave@example.com", "password123", domain.TierFree)

	session, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Invalidate(ctx, session.ID))
	_, _, err = svc.Validate(ctx, session.ID)
	require.ErrorIs(t, err, ErrInvalidSession)

	// Invalidating an already-gone session is not an error.
	require.NoError(t, svc.Invalidate(ctx, session.ID))
}

func TestSessionInvalidateAll(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}

	user := seedUser(t, st, "erin@example.com", "password123", domain.TierFree)
	other := seedUser(t, st, "frank@example.com", "password123", domain.TierFree)

	first, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	bystander, err := svc.Create(ctx, other.ID)
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateAll(ctx, user.ID))

	_, _, err = svc.Validate(ctx, first.ID)
	require.ErrorIs(t, err, ErrInvalidSession)
	_, _, err = svc.Validate(ctx, second.ID)
	require.ErrorIs(t, err, ErrInvalidSession)

	// Other users keep their sessions.
	_, _, err = svc.Validate(ctx, bystander.ID)
	require.NoError(t, err)
}

func TestSessionCookies(t *testing.T) {
	svc := &SessionService{Secure: true}

	session := domain.Session{ID: "token-value"}
	cookie := svc.SessionCookie(session)
	require.Equal(t, SessionCookieName, cookie.Name)
	require.Equal(t, "token-value", cookie.Value)
	require.Equal(t, "/", cookie.Path)
	require.True(t, cookie.HttpOnly)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Zero(t, cookie.MaxAge, "server-side expiry is authoritative")

	blank := svc.BlankSessionCookie()
	require.Equal(t, SessionCookieName, blank.Name)
	require.Empty(t, blank.Value)
	require.Equal(t, -1, blank.MaxAge)
}
