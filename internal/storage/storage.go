// Package storage is the object-storage gateway. The pipelines only ever see
// the returned URL, key and original filename; where the bytes live is this
// package's business.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFile is what the rest of the system knows about an uploaded file.
type StoredFile struct {
	URL          string
	Key          string
	OriginalName string
}

type Storage interface {
	Save(file *multipart.FileHeader) (StoredFile, error)
	Remove(key string) error
}

// LocalStorage writes files to a directory on disk and serves them under a
// public URL prefix.
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStorage) Save(fileHeader *multipart.FileHeader) (StoredFile, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return StoredFile{}, fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer src.Close()

	key := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))

	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return StoredFile{}, fmt.Errorf("cannot create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filepath.Join(s.dir, key))
		return StoredFile{}, fmt.Errorf("cannot write file: %w", err)
	}

	return StoredFile{
		URL:          s.baseURL + "/" + key,
		Key:          key,
		OriginalName: fileHeader.Filename,
	}, nil
}

func (s *LocalStorage) Remove(key string) error {
	// Key is always a bare uuid-based name we generated; refuse anything else.
	if key == "" || key != filepath.Base(key) {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
