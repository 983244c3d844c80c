package sqlite

import (
	"context"
	"database/sql"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
)

type songsRepo struct {
	db dbtx
}

func (r *songsRepo) ListSongs(ctx context.Context, projectID string) ([]store.SongWithVersions, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, created_at, updated_at
		 FROM songs WHERE project_id = ?
		 ORDER BY created_at ASC, id ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []store.SongWithVersions
	index := make(map[string]int)
	for rows.Next() {
		var s domain.Song
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		index[s.ID] = len(songs)
		songs = append(songs, store.SongWithVersions{Song: s})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, nil
	}

	vrows, err := r.db.QueryContext(ctx,
		`SELECT v.id, v.song_id, v.name, v.file_url, v.created_at
		 FROM versions v
		 JOIN songs s ON s.id = v.song_id
		 WHERE s.project_id = ?
		 ORDER BY v.created_at ASC, v.id ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer vrows.Close()

	for vrows.Next() {
		var v domain.Version
		if err := vrows.Scan(&v.ID, &v.SongID, &v.Name, &v.FileURL, &v.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[v.SongID]; ok {
			songs[i].Versions = append(songs[i].Versions, v)
		}
	}
	return songs, vrows.Err()
}

func (r *songsRepo) GetSongForOwner(ctx context.Context, ownerID, songID string) (domain.Song, error) {
	var s domain.Song
	err := r.db.QueryRowContext(ctx,
		`SELECT s.id, s.project_id, s.name, s.created_at, s.updated_at
		 FROM songs s
		 JOIN projects p ON p.id = s.project_id
		 WHERE s.id = ? AND p.user_id = ?`, songID, ownerID).
		Scan(&s.ID, &s.ProjectID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Song{}, mapNotFound(err)
	}
	return s, nil
}

func (r *songsRepo) CreateSong(ctx context.Context, s domain.Song) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO songs (id, project_id, name) VALUES (?, ?, ?)`,
		s.ID, s.ProjectID, s.Name)
	return mapConstraint(err)
}

func (r *songsRepo) UpdateSongName(ctx context.Context, songID, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE songs SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, songID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *songsRepo) DeleteSong(ctx context.Context, songID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, songID)
	return err
}

func (r *songsRepo) CreateVersion(ctx context.Context, v domain.Version) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO versions (id, song_id, name, file_url) VALUES (?, ?, ?, ?)`,
		v.ID, v.SongID, v.Name, v.FileURL)
	return mapConstraint(err)
}

func (r *songsRepo) GetVersionForOwner(ctx context.Context, ownerID, versionID string) (domain.Version, error) {
	var v domain.Version
	err := r.db.QueryRowContext(ctx,
		`SELECT v.id, v.song_id, v.name, v.file_url, v.created_at
		 FROM versions v
		 JOIN songs s ON s.id = v.song_id
		 JOIN projects p ON p.id = s.project_id
		 WHERE v.id = ? AND p.user_id = ?`, versionID, ownerID).
		Scan(&v.ID, &v.SongID, &v.Name, &v.FileURL, &v.CreatedAt)
	if err != nil {
		return domain.Version{}, mapNotFound(err)
	}
	return v, nil
}

func (r *songsRepo) DeleteVersion(ctx context.Context, versionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM versions WHERE id = ?`, versionID)
	return err
}

func (r *songsRepo) DeleteSongVersions(ctx context.Context, songID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM versions WHERE song_id = ?`, songID)
	return err
}

func (r *songsRepo) CountStoredVersions(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM versions v
		 JOIN songs s ON s.id = v.song_id
		 JOIN projects p ON p.id = s.project_id
		 WHERE p.user_id = ? AND v.file_url <> ''`, ownerID).Scan(&count)
	return count, err
}
