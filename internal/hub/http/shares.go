package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type SharesHandler struct {
	Shares   *service.ShareService
	Comments *service.CommentService
}

// HandleCreate mints a share link for a project. The raw token appears only
// in this response's share URL; the server keeps a fingerprint.
//
//	@Summary	Create a share link
//	@Tags		Shares
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	201	{object}	hubapi.ShareLinkResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id}/shares [post].
func (h *SharesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	link, shareURL, err := h.Shares.CreateLink(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toShareLinkResponse(link, shareURL))
}

// HandleRevoke deactivates a share link.
//
//	@Summary	Revoke a share link
//	@Tags		Shares
//	@Produce	json
//	@Param		id	path		string	true	"Share link ID"
//	@Success	200	{object}	hubapi.StatusResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/shares/{id} [delete].
func (h *SharesHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.Shares.Revoke(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "revoked"})
}

// HandleSharedProject serves the public read-only project view. No session
// is involved; the token in the URL authorizes, and every failure reads as
// 404.
//
//	@Summary	View a shared project
//	@Tags		Shares
//	@Produce	json
//	@Param		projectID	path		string	true	"Project ID"
//	@Param		token		path		string	true	"Share token"
//	@Success	200			{object}	hubapi.SharedProjectResponse
//	@Failure	404			{object}	hubapi.ErrorResponse	"Unknown project, bad token, revoked or expired link"
//	@Router		/v1/share/{projectID}/{token} [get].
func (h *SharesHandler) HandleSharedProject(w http.ResponseWriter, r *http.Request) {
	shared, err := h.Shares.Resolve(r.Context(), r.PathValue("projectID"), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	songs := make([]hubapi.SongResponse, 0, len(shared.Songs))
	for _, s := range shared.Songs {
		songs = append(songs, toSongResponse(s))
	}
	comments := make([]hubapi.CommentResponse, 0, len(shared.Comments))
	for _, c := range shared.Comments {
		comments = append(comments, toCommentResponse(c))
	}

	httpx.WriteJSON(w, http.StatusOK, hubapi.SharedProjectResponse{
		Project:  toProjectResponse(shared.Project),
		Songs:    songs,
		Comments: comments,
	})
}

// HandleShareComment records feedback through a share link.
//
//	@Summary	Comment on a shared project
//	@Tags		Shares
//	@Accept		json
//	@Produce	json
//	@Param		projectID	path		string					true	"Project ID"
//	@Param		token		path		string					true	"Share token"
//	@Param		request		body		hubapi.CommentRequest	true	"Feedback"
//	@Success	201			{object}	hubapi.CommentResponse
//	@Failure	404			{object}	hubapi.ErrorResponse	"Bad token or version outside the shared project"
//	@Router		/v1/share/{projectID}/{token}/comments [post].
func (h *SharesHandler) HandleShareComment(w http.ResponseWriter, r *http.Request) {
	var req hubapi.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.Comments.CreateViaShare(r.Context(),
		r.PathValue("projectID"), r.PathValue("token"),
		req.VersionID, req.Author, req.Email, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCommentResponse(comment))
}
