package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize bounds a single uploaded image.
const MaxUploadSize = 5 << 20 // 5 MiB

// RecipeDir is the subdirectory for recipe images.
const RecipeDir = "resep"

var (
	// ErrFileTooLarge is returned when an upload exceeds MaxUploadSize.
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsupportedType is returned for non-image uploads.
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// LocalStore writes uploaded files under a root directory and hands back
// their relative paths for persistence. Filenames are prefixed with the
// upload timestamp in milliseconds so concurrent uploads of the same file
// name do not collide.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Prefix is the slash-separated prefix stored paths carry, derived from the
// configured root ("uploads/" by default). Everything that strips or
// reassembles stored paths must use it rather than a literal, so the
// convention survives a non-default UPLOAD_DIR.
func (s *LocalStore) Prefix() string {
	return filepath.ToSlash(s.root) + "/"
}

// EnsureDirs creates the upload directories if missing.
func (s *LocalStore) EnsureDirs() error {
	for _, dir := range []string{s.root, filepath.Join(s.root, RecipeDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return nil
}

// Save stores an uploaded file under root/subdir and returns its
// slash-separated relative path, e.g. "uploads/1693526400000-soup.jpg".
func (s *LocalStore) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	dstPath := filepath.Join(s.root, subdir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.Prefix() + path.Join(subdir, name), nil
}
