package http

import (
	"io"
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/internal/hub/storage"
	"github.com/Chickencurry27/artisthub/pkg/httpx"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
	"github.com/Chickencurry27/artisthub/pkg/idx"
)

// maxUploadBytes caps a single audio upload at 100 MB.
const maxUploadBytes = 100 << 20

type UploadsHandler struct {
	Storage *storage.LocalStorage
	Usage   *service.UsageService
}

// HandleUpload stores an audio file and returns its URL for use as a
// version's file reference.
//
//	@Summary	Upload an audio file
//	@Tags		Uploads
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Audio file"
//	@Success	201		{object}	hubapi.UploadResponse
//	@Failure	400		{object}	hubapi.ErrorResponse	"Missing or oversized file"
//	@Failure	403		{object}	hubapi.ErrorResponse	"Storage limit reached"
//	@Router		/v1/uploads [post].
func (h *UploadsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := h.Usage.EnsureHasStorageSpace(r.Context(), userFromContext(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		hubapi.ErrInvalidRequest.WriteError(w)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		hubapi.ErrInvalidRequest.WriteError(w)
		return
	}
	defer file.Close()

	fileID := idx.New().String()
	if err := h.Storage.Save(fileID, file); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, hubapi.UploadResponse{FileURL: "/v1/uploads/" + fileID})
}

// HandleDownload streams a stored file back.
//
//	@Summary	Download an uploaded file
//	@Tags		Uploads
//	@Produce	octet-stream
//	@Param		id	path	string	true	"File ID"
//	@Success	200
//	@Failure	404	{object}	hubapi.ErrorResponse
//	@Router		/v1/uploads/{id} [get].
func (h *UploadsHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("id")
	if _, err := idx.Parse(fileID); err != nil {
		hubapi.ErrNotFound.WriteError(w)
		return
	}

	stream, err := h.Storage.Get(fileID)
	if err != nil {
		hubapi.ErrNotFound.WriteError(w)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, stream)
}
