package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type ClientsHandler struct {
	Clients *service.ClientService
}

// HandleList returns the account's client roster.
//
//	@Summary	List clients
//	@Tags		Clients
//	@Produce	json
//	@Success	200	{array}		hubapi.ClientResponse
//	@Failure	401	{object}	hubapi.ErrorResponse
//	@Router		/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List(r.Context(), userFromContext(r.Context()).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]hubapi.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a client, subject to the tier's client ceiling.
//
//	@Summary	Create a client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		request	body		hubapi.ClientRequest	true	"Client details"
//	@Success	201		{object}	hubapi.ClientResponse
//	@Failure	400		{object}	hubapi.ErrorResponse	"Missing name or email"
//	@Failure	403		{object}	hubapi.ErrorResponse	"Client limit reached"
//	@Failure	409		{object}	hubapi.ErrorResponse	"Duplicate client email"
//	@Router		/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hubapi.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client, err := h.Clients.Create(r.Context(), userFromContext(r.Context()), service.ClientInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ArtistName: req.ArtistName,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toClientResponse(client))
}

// HandleGet returns one client.
//
//	@Summary	Get a client
//	@Tags		Clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	hubapi.ClientResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	client, err := h.Clients.Get(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientResponse(client))
}

// HandleUpdate replaces a client's details.
//
//	@Summary	Update a client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Client ID"
//	@Param		request	body		hubapi.ClientRequest	true	"Client details"
//	@Success	200		{object}	hubapi.ClientResponse
//	@Failure	404		{object}	hubapi.ErrorResponse
//	@Router		/v1/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hubapi.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client, err := h.Clients.Update(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"), service.ClientInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ArtistName: req.ArtistName,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientResponse(client))
}

// HandleDelete removes a client and everything under it.
//
//	@Summary	Delete a client
//	@Tags		Clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	hubapi.StatusResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Clients.Delete(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "deleted"})
}
