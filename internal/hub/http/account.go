package http

import (
	"net/http"
	"strings"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type AccountHandler struct {
	AuthService *service.AuthService
}

// HandleMe returns the authenticated account.
//
//	@Summary		Get the current account
//	@Tags			Account
//	@Produce		json
//	@Success		200	{object}	hubapi.UserResponse
//	@Failure		401	{object}	hubapi.ErrorResponse	"Missing or invalid session"
//	@Router			/v1/me [get].
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(userFromContext(r.Context())))
}

// HandleUpdateName changes the account's display name.
//
//	@Summary		Update the display name
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubapi.UpdateNameRequest	true	"New display name"
//	@Success		200		{object}	hubapi.UserResponse
//	@Failure		400		{object}	hubapi.ErrorResponse	"Empty name"
//	@Failure		401		{object}	hubapi.ErrorResponse	"Missing or invalid session"
//	@Router			/v1/me [patch].
func (h *AccountHandler) HandleUpdateName(w http.ResponseWriter, r *http.Request) {
	var req hubapi.UpdateNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := userFromContext(r.Context())
	if err := h.AuthService.UpdateName(r.Context(), user.ID, req.Name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	user.Name = strings.TrimSpace(req.Name)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
