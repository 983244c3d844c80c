package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type ProjectsHandler struct {
	Projects *service.ProjectService
	Comments *service.CommentService
}

// HandleList returns the account's projects with their clients.
//
//	@Summary	List projects
//	@Tags		Projects
//	@Produce	json
//	@Success	200	{array}		hubapi.ProjectResponse
//	@Failure	401	{object}	hubapi.ErrorResponse
//	@Router		/v1/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List(r.Context(), userFromContext(r.Context()).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]hubapi.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp := toProjectResponse(p.Project)
		client := toClientResponse(p.Client)
		resp.Client = &client
		out = append(out, resp)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a project, subject to the tier's project ceiling.
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		request	body		hubapi.ProjectRequest	true	"Project details"
//	@Success	201		{object}	hubapi.ProjectResponse
//	@Failure	400		{object}	hubapi.ErrorResponse	"Missing name or unknown client"
//	@Failure	403		{object}	hubapi.ErrorResponse	"Project limit reached"
//	@Router		/v1/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hubapi.ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := h.Projects.Create(r.Context(), userFromContext(r.Context()), service.ProjectInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(project))
}

// HandleGet returns one project.
//
//	@Summary	Get a project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	hubapi.ProjectResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.Get(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleUpdate replaces a project's details.
//
//	@Summary	Update a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Project ID"
//	@Param		request	body		hubapi.ProjectRequest	true	"Project details"
//	@Success	200		{object}	hubapi.ProjectResponse
//	@Failure	404		{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hubapi.ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := h.Projects.Update(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"), service.ProjectInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(project))
}

// HandleDelete removes a project and everything under it.
//
//	@Summary	Delete a project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	hubapi.StatusResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Projects.Delete(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "deleted"})
}

// HandleComments returns a project's feedback for its owner, newest first.
//
//	@Summary	List project feedback
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{array}		hubapi.CommentResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id}/comments [get].
func (h *ProjectsHandler) HandleComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Comments.ListForProject(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]hubapi.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
