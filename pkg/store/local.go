package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"ttsserver/domain"
	"ttsserver/pkg/log"
)

// LocalStore keeps scratch files in a directory on disk.
type LocalStore struct {
	Dir string
	l   *log.Logger
}

func NewLocalStore(dir string, l *log.Logger) (*LocalStore, error) {
	if dir == "" {
		dir = "audio"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio dir: %w", err)
	}
	return &LocalStore{Dir: dir, l: l.WithModule("LocalStore")}, nil
}

func (s *LocalStore) Save(ctx context.Context, name string, data []byte) error {
	if err := CheckName(name); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.l.Debug("saved audio", log.String("path", path), log.Int("bytes", len(data)))
	return nil
}

func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if err := CheckName(name); err != nil {
		return nil, 0, err
	}
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, domain.ErrFileNotFound
		}
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, domain.ErrFileNotFound
	}
	return f, info.Size(), nil
}
