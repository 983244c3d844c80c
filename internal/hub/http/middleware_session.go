package http

import (
	"context"
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type userCtxKey struct{}

// userFromContext returns the authenticated user placed by RequireSession.
func userFromContext(ctx context.Context) domain.User {
	u, _ := ctx.Value(userCtxKey{}).(domain.User)
	return u
}

// RequireSession validates the session cookie before anything else touches
// the request. A missing or invalid session is rejected with 401 without
// reading the body. On a sliding-expiry refresh the cookie is reissued.
func RequireSession(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.SessionCookieName)
			if err != nil {
				hubapi.ErrInvalidSession.WriteError(w)
				return
			}

			user, session, err := sessions.Validate(r.Context(), cookie.Value)
			if err != nil {
				// The cookie is useless now; clear it so the browser
				// stops sending it.
				http.SetCookie(w, sessions.BlankSessionCookie())
				hubapi.ErrInvalidSession.WriteError(w)
				return
			}

			if session.Fresh {
				http.SetCookie(w, sessions.SessionCookie(session))
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, user)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
			ctx = context.WithValue(ctx, httpx.CtxKeySessionID, session.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
