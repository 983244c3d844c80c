// Package storage persists uploaded audio files on local disk. Files are
// addressed by their ULID, sharded into two-character subdirectories so no
// single directory grows unbounded.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (ls *LocalStorage) pathFromID(id string) string {
	shard := "00"
	if len(id) >= 2 {
		shard = id[:2]
	}
	return filepath.Join(ls.basePath, shard, id)
}

func (ls *LocalStorage) Save(id string, data io.Reader) error {
	filePath := ls.pathFromID(id)

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (ls *LocalStorage) Get(id string) (io.ReadCloser, error) {
	file, err := os.Open(ls.pathFromID(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file with id %s not found: %w", id, err)
		}
		return nil, err
	}
	return file, nil
}

func (ls *LocalStorage) Delete(id string) error {
	err := os.Remove(ls.pathFromID(id))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
