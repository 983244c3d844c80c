package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Sessions    *service.SessionService
}

// HandleRegister creates an account and logs it straight in.
//
//	@Summary		Register a new account
//	@Description	Creates an account on the free tier and issues a session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubapi.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	hubapi.UserResponse
//	@Failure		400		{object}	hubapi.ErrorResponse	"Malformed request or weak password"
//	@Failure		409		{object}	hubapi.ErrorResponse	"Email already registered"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req hubapi.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, session, err := h.AuthService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.Sessions.SessionCookie(session))
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleLogin verifies credentials and issues a session cookie.
//
//	@Summary		Log in
//	@Description	Verifies email and password and issues a session cookie. Unknown email and wrong password are indistinguishable.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	hubapi.UserResponse
//	@Failure		401		{object}	hubapi.ErrorResponse	"Invalid credentials"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req hubapi.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, session, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.Sessions.SessionCookie(session))
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleLogout invalidates the current session and clears the cookie.
//
//	@Summary		Log out
//	@Description	Invalidates the session and clears the cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	hubapi.StatusResponse
//	@Failure		401	{object}	hubapi.APIError	"No valid session"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), httpx.SessionIDFromContext(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.Sessions.BlankSessionCookie())
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "logged_out"})
}
