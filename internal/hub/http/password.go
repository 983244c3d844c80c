package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type PasswordHandler struct {
	Resets *service.PasswordResetService
}

// HandleForgot requests a password reset link.
//
//	@Summary		Request a password reset
//	@Description	Sends a reset link when the address has an account. The response is identical either way.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubapi.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	hubapi.StatusResponse
//	@Failure		400		{object}	hubapi.ErrorResponse	"Malformed request"
//	@Router			/v1/auth/forgot-password [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	var req hubapi.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		hubapi.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.Resets.RequestReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "sent"})
}

// HandleReset consumes a reset token and sets a new password.
//
//	@Summary		Reset password
//	@Description	Sets a new password using a reset token. The token is single-use and every existing session is invalidated.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string							true	"Reset token from the emailed link"
//	@Param			request	body		hubapi.ResetPasswordRequest	true	"New password"
//	@Success		200		{object}	hubapi.StatusResponse
//	@Failure		400		{object}	hubapi.ErrorResponse	"Invalid or expired token, or weak password"
//	@Router			/v1/auth/reset-password/{token} [post].
func (h *PasswordHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		hubapi.ErrInvalidResetToken.WriteError(w)
		return
	}

	var req hubapi.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Resets.ResetPassword(r.Context(), token, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "password_updated"})
}
