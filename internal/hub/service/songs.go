package service

import (
	"context"
	"strings"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/idx"
)

// VersionInput is one rendition of a song being created or replaced.
type VersionInput struct {
	Name    string
	FileURL string
}

// SongService manages songs and their versions. Every operation resolves
// ownership through the project chain, so a song id alone never grants
// access. Versions carrying a file URL count against the storage estimate.
type SongService struct {
	Store store.Store
	Usage *UsageService
}

// ListForProject returns the project's songs with their versions, after
// confirming the project belongs to the caller.
func (s *SongService) ListForProject(ctx context.Context, ownerID, projectID string) ([]store.SongWithVersions, error) {
	if _, err := s.Store.Projects().GetProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.Store.Songs().ListSongs(ctx, projectID)
}

// Create adds a song with its initial versions in one transaction. Versions
// with a file URL are gated by the storage ceiling.
func (s *SongService) Create(ctx context.Context, user domain.User, projectID, name string, versions []VersionInput) (store.SongWithVersions, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.SongWithVersions{}, ErrInvalidInput
	}
	if _, err := s.Store.Projects().GetProject(ctx, user.ID, projectID); err != nil {
		return store.SongWithVersions{}, err
	}

	if storedVersions(versions) > 0 {
		if err := s.Usage.EnsureHasStorageSpace(ctx, user); err != nil {
			return store.SongWithVersions{}, err
		}
	}

	song := domain.Song{
		ID:        idx.New().String(),
		ProjectID: projectID,
		Name:      name,
	}

	result := store.SongWithVersions{Song: song}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Songs().CreateSong(ctx, song); err != nil {
			return err
		}
		for _, in := range versions {
			v := domain.Version{
				ID:      idx.New().String(),
				SongID:  song.ID,
				Name:    strings.TrimSpace(in.Name),
				FileURL: strings.TrimSpace(in.FileURL),
			}
			if v.Name == "" {
				return ErrInvalidInput
			}
			if err := tx.Songs().CreateVersion(ctx, v); err != nil {
				return err
			}
			result.Versions = append(result.Versions, v)
		}
		return nil
	})
	if err != nil {
		return store.SongWithVersions{}, err
	}
	return result, nil
}

// Rename changes a song's name.
func (s *SongService) Rename(ctx context.Context, ownerID, songID, name string) (domain.Song, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Song{}, ErrInvalidInput
	}
	if _, err := s.Store.Songs().GetSongForOwner(ctx, ownerID, songID); err != nil {
		return domain.Song{}, err
	}
	if err := s.Store.Songs().UpdateSongName(ctx, songID, name); err != nil {
		return domain.Song{}, err
	}
	return s.Store.Songs().GetSongForOwner(ctx, ownerID, songID)
}

// Delete removes a song and, via FK cascade, its versions and their comments.
func (s *SongService) Delete(ctx context.Context, ownerID, songID string) error {
	if _, err := s.Store.Songs().GetSongForOwner(ctx, ownerID, songID); err != nil {
		return err
	}
	return s.Store.Songs().DeleteSong(ctx, songID)
}

// AddVersion appends one version to a song. A version with a file URL is
// gated by the storage ceiling.
func (s *SongService) AddVersion(ctx context.Context, user domain.User, songID string, in VersionInput) (domain.Version, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Version{}, ErrInvalidInput
	}
	if _, err := s.Store.Songs().GetSongForOwner(ctx, user.ID, songID); err != nil {
		return domain.Version{}, err
	}
	if strings.TrimSpace(in.FileURL) != "" {
		if err := s.Usage.EnsureHasStorageSpace(ctx, user); err != nil {
			return domain.Version{}, err
		}
	}

	v := domain.Version{
		ID:      idx.New().String(),
		SongID:  songID,
		Name:    name,
		FileURL: strings.TrimSpace(in.FileURL),
	}
	if err := s.Store.Songs().CreateVersion(ctx, v); err != nil {
		return domain.Version{}, err
	}
	return v, nil
}

// DeleteVersion removes a single version.
func (s *SongService) DeleteVersion(ctx context.Context, ownerID, versionID string) error {
	if _, err := s.Store.Songs().GetVersionForOwner(ctx, ownerID, versionID); err != nil {
		return err
	}
	return s.Store.Songs().DeleteVersion(ctx, versionID)
}

func storedVersions(versions []VersionInput) int {
	n := 0
	for _, v := range versions {
		if strings.TrimSpace(v.FileURL) != "" {
			n++
		}
	}
	return n
}
