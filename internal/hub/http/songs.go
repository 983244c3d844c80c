package http

import (
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
)

type SongsHandler struct {
	Songs *service.SongService
}

// HandleList returns a project's songs with their versions.
//
//	@Summary	List a project's songs
//	@Tags		Songs
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{array}		hubapi.SongResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id}/songs [get].
func (h *SongsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	songs, err := h.Songs.ListForProject(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]hubapi.SongResponse, 0, len(songs))
	for _, s := range songs {
		out = append(out, toSongResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a song with its initial versions.
//
//	@Summary	Create a song
//	@Tags		Songs
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Project ID"
//	@Param		request	body		hubapi.SongRequest	true	"Song name and initial versions"
//	@Success	201		{object}	hubapi.SongResponse
//	@Failure	403		{object}	hubapi.ErrorResponse	"Storage limit reached"
//	@Failure	404		{object}	hubapi.ErrorResponse
//	@Router		/v1/projects/{id}/songs [post].
func (h *SongsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hubapi.SongRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	versions := make([]service.VersionInput, 0, len(req.Versions))
	for _, v := range req.Versions {
		versions = append(versions, service.VersionInput{Name: v.Name, FileURL: v.FileURL})
	}

	song, err := h.Songs.Create(r.Context(), userFromContext(r.Context()), r.PathValue("id"), req.Name, versions)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSongResponse(song))
}

// HandleRename changes a song's name.
//
//	@Summary	Rename a song
//	@Tags		Songs
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Song ID"
//	@Param		request	body		hubapi.RenameSongRequest	true	"New name"
//	@Success	200		{object}	hubapi.SongResponse
//	@Failure	404		{object}	hubapi.ErrorResponse
//	@Router		/v1/songs/{id} [patch].
func (h *SongsHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req hubapi.RenameSongRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	song, err := h.Songs.Rename(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id"), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSongResponse(store.SongWithVersions{Song: song}))
}

// HandleDelete removes a song with its versions and comments.
//
//	@Summary	Delete a song
//	@Tags		Songs
//	@Produce	json
//	@Param		id	path		string	true	"Song ID"
//	@Success	200	{object}	hubapi.StatusResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/songs/{id} [delete].
func (h *SongsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Songs.Delete(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "deleted"})
}

// HandleAddVersion appends a version to a song.
//
//	@Summary	Add a song version
//	@Tags		Songs
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Song ID"
//	@Param		request	body		hubapi.VersionRequest	true	"Version details"
//	@Success	201		{object}	hubapi.VersionResponse
//	@Failure	403		{object}	hubapi.ErrorResponse	"Storage limit reached"
//	@Failure	404		{object}	hubapi.ErrorResponse
//	@Router		/v1/songs/{id}/versions [post].
func (h *SongsHandler) HandleAddVersion(w http.ResponseWriter, r *http.Request) {
	var req hubapi.VersionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	version, err := h.Songs.AddVersion(r.Context(), userFromContext(r.Context()), r.PathValue("id"), service.VersionInput{
		Name:    req.Name,
		FileURL: req.FileURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toVersionResponse(version))
}

// HandleDeleteVersion removes a single version.
//
//	@Summary	Delete a song version
//	@Tags		Songs
//	@Produce	json
//	@Param		id	path		string	true	"Version ID"
//	@Success	200	{object}	hubapi.StatusResponse
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/versions/{id} [delete].
func (h *SongsHandler) HandleDeleteVersion(w http.ResponseWriter, r *http.Request) {
	if err := h.Songs.DeleteVersion(r.Context(), userFromContext(r.Context()).ID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubapi.StatusResponse{Status: "deleted"})
}
