package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/google/uuid"
)

// fsPhotoStorage keeps photos as plain files in one directory. All file
// access goes through an [os.Root], so a name can never reach outside it.
type fsPhotoStorage struct {
	root   *os.Root
	logger *logger.Logger
}

// NewFSPhotoStorage creates dir when missing and returns a [PhotoStorage]
// rooted at it.
func NewFSPhotoStorage(dir string, log *logger.Logger) (*fsPhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewFSPhotoStorage").Str("dir", dir).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		log.Err(err).Str("func", "NewFSPhotoStorage").Str("dir", dir).Msg("error opening uploads directory")
		return nil, fmt.Errorf("error opening uploads directory: %w", err)
	}

	log.Debug().Str("func", "NewFSPhotoStorage").Str("dir", dir).Msg("created filesystem photo storage")
	return &fsPhotoStorage{root: root, logger: log}, nil
}

// Save writes photo to a temporary file and renames it over name, so
// readers never observe a partially written photo.
func (s *fsPhotoStorage) Save(ctx context.Context, name string, photo io.Reader) error {
	log := logger.FromContext(ctx)

	if err := validatePhotoName(name); err != nil {
		return err
	}

	tmpName := tempPhotoName(name)
	tmp, err := s.root.Create(tmpName)
	if err != nil {
		log.Err(err).Str("func", "*fsPhotoStorage.Save").Str("name", name).Msg("error creating temporary file")
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	if _, err = io.Copy(tmp, photo); err != nil {
		_ = tmp.Close()
		_ = s.root.Remove(tmpName)
		log.Err(err).Str("func", "*fsPhotoStorage.Save").Str("name", name).Msg("error writing photo")
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}
	if err = tmp.Close(); err != nil {
		_ = s.root.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	if err = s.root.Rename(tmpName, name); err != nil {
		_ = s.root.Remove(tmpName)
		log.Err(err).Str("func", "*fsPhotoStorage.Save").Str("name", name).Msg("error renaming photo")
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	return nil
}

func (s *fsPhotoStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := validatePhotoName(name); err != nil {
		return nil, ErrPhotoNotFound
	}

	f, err := s.root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPhotoNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*fsPhotoStorage.Open").Str("name", name).Msg("error opening photo")
		return nil, fmt.Errorf("error opening photo: %w", err)
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, ErrPhotoNotFound
	}

	return f, nil
}

// Close releases the directory handle.
func (s *fsPhotoStorage) Close() error {
	return s.root.Close()
}

// tempPhotoName is unique per call, so concurrent saves of one name never
// share a temporary file. The leading dot keeps it unreachable through Open.
func tempPhotoName(name string) string {
	return "." + name + "." + uuid.NewString() + ".tmp"
}

// validatePhotoName accepts only a single, non-hidden path element.
func validatePhotoName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return ErrInvalidPhotoName
	}
	return nil
}
