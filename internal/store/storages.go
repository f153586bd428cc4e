package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
)

// Storages bundles every repository and the photo storage the services
// depend on.
type Storages struct {
	UserRepository  UserRepository
	HouseRepository HouseRepository
	BidRepository   BidRepository
	PhotoStorage    PhotoStorage

	closers []io.Closer
}

// NewStorages connects the relational database selected by cfg.DB, applies
// the schema migrations and opens the photo storage selected by
// cfg.Files.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewStorages").Msg("database migrations applied")

	photos, err := NewPhotoStorage(ctx, cfg, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	storages := NewStoragesFromDB(db, photos, log)
	storages.closers = append(storages.closers, photos, db)

	return storages, nil
}

// NewStoragesFromDB wires the repositories over an already connected db.
func NewStoragesFromDB(db *DB, photos PhotoStorage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		HouseRepository: NewHouseRepository(db, log),
		BidRepository:   NewBidRepository(db, log),
		PhotoStorage:    photos,
	}
}

// PhotoStorageCloser is a PhotoStorage that holds resources to release.
type PhotoStorageCloser interface {
	PhotoStorage
	io.Closer
}

// NewPhotoStorage opens the photo storage named by cfg.Files.Backend.
func NewPhotoStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (PhotoStorageCloser, error) {
	switch cfg.Files.Backend {
	case config.PhotoBackendFS:
		return NewFSPhotoStorage(cfg.Files.UploadsDir, log)
	case config.PhotoBackendGridFS:
		return NewGridFSPhotoStorage(ctx, cfg.Mongo, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPhotoBackend, cfg.Files.Backend)
	}
}

// Close releases the photo storage and the database pool.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
