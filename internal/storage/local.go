package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseDir    = "./uploads"
	defaultStaticBase = "/static/uploads"
)

// LocalStore writes media to the local filesystem and serves it through a
// static route. The deletion handle is the file's relative path.
type LocalStore struct {
	baseDir    string
	staticBase string
}

func NewLocalStore(baseDir, staticBase string) *LocalStore {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	if staticBase == "" {
		staticBase = defaultStaticBase
	}
	return &LocalStore{baseDir: baseDir, staticBase: staticBase}
}

func (s *LocalStore) Upload(_ context.Context, r io.Reader, filename, _ string) (*StoredObject, error) {
	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s%s", uuid.New().String(), sanitizeName(filename), filepath.Ext(filename))
	absPath := filepath.Join(absDir, name)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("write file: %w", err)
	}

	relPath := filepath.Join(relDir, name)
	return &StoredObject{
		URL:      s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/"),
		PublicID: relPath,
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, publicID string) error {
	// Clean keeps leading "..", so an untrusted handle could still point
	// outside the uploads tree.
	rel := filepath.Clean(publicID)
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return fmt.Errorf("invalid object handle %q", publicID)
	}

	absPath := filepath.Join(s.baseDir, rel)
	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
