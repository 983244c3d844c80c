package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/service"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/hubapi"
	"github.com/Chickencurry27/artisthub/pkg/slogx"
)

// maxBodyBytes caps JSON request bodies. Uploads have their own limit.
const maxBodyBytes = 1 << 20

// decodeJSON reads and decodes a JSON request body. A malformed or oversized
// body reports false after writing the error response.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		hubapi.ErrInvalidRequest.WriteError(w)
		return false
	}
	_, _ = io.Copy(io.Discard, r.Body)
	return true
}

// writeServiceError maps service and store errors onto wire errors. Anything
// unrecognized is logged and surfaced as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		hubapi.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrWeakPassword):
		hubapi.ErrWeakPassword.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		hubapi.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		hubapi.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidSession):
		hubapi.ErrInvalidSession.WriteError(w)
	case errors.Is(err, service.ErrInvalidResetToken):
		hubapi.ErrInvalidResetToken.WriteError(w)
	case errors.Is(err, service.ErrLimitReached):
		hubapi.ErrLimitReached.WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		hubapi.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		hubapi.ErrAlreadyExists.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		hubapi.ErrServerError.WriteError(w)
	}
}

// ============================================================================
// Domain-to-wire mapping
// ============================================================================

func toUserResponse(u domain.User) hubapi.UserResponse {
	return hubapi.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Tier:      string(u.Tier),
		CreatedAt: u.CreatedAt,
	}
}

func toClientResponse(c domain.Client) hubapi.ClientResponse {
	return hubapi.ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		ArtistName: c.ArtistName,
		ImageURL:   c.ImageURL,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toProjectResponse(p domain.Project) hubapi.ProjectResponse {
	return hubapi.ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toVersionResponse(v domain.Version) hubapi.VersionResponse {
	return hubapi.VersionResponse{
		ID:        v.ID,
		SongID:    v.SongID,
		Name:      v.Name,
		FileURL:   v.FileURL,
		CreatedAt: v.CreatedAt,
	}
}

func toSongResponse(s store.SongWithVersions) hubapi.SongResponse {
	versions := make([]hubapi.VersionResponse, 0, len(s.Versions))
	for _, v := range s.Versions {
		versions = append(versions, toVersionResponse(v))
	}
	return hubapi.SongResponse{
		ID:        s.ID,
		ProjectID: s.ProjectID,
		Name:      s.Name,
		Versions:  versions,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toShareLinkResponse(l domain.ShareLink, shareURL string) hubapi.ShareLinkResponse {
	return hubapi.ShareLinkResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		ShareURL:  shareURL,
		Active:    l.Active,
		ExpiresAt: l.ExpiresAt,
		CreatedAt: l.CreatedAt,
	}
}

func toCommentResponse(c domain.Comment) hubapi.CommentResponse {
	return hubapi.CommentResponse{
		ID:        c.ID,
		VersionID: c.VersionID,
		Author:    c.Author,
		Email:     c.Email,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
