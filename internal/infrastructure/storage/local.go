package storage

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// LocalStore persists uploaded files in a flat directory. Stored names are
// <unix-ms>-<random-int><original-ext>, unique enough for logo uploads but
// not cryptographically so.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// Save writes the uploaded file under a generated name and returns that name.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if s == nil {
		return "", errors.New("nil store")
	}
	if fh == nil {
		return "", errors.New("nil file header")
	}

	name := generateName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	return name, nil
}

func generateName(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}
