package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-house-bids/internal/config"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoConnectTimeout = 10 * time.Second

// gridFSPhotoStorage keeps photos in a MongoDB GridFS bucket. GridFS keeps
// every upload as a revision; reads return the newest one, so saving an
// existing name replaces it for all readers.
type gridFSPhotoStorage struct {
	client *mongo.Client
	bucket *gridfs.Bucket
	logger *logger.Logger
}

// NewGridFSPhotoStorage connects to cfg.URI and opens the cfg.Bucket bucket
// of cfg.Database.
func NewGridFSPhotoStorage(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*gridFSPhotoStorage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewGridFSPhotoStorage").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		log.Err(err).Str("func", "NewGridFSPhotoStorage").Msg("error connecting to mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	storage, err := newGridFSPhotoStorage(client, cfg, log)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("func", "NewGridFSPhotoStorage").Str("database", cfg.Database).Str("bucket", cfg.Bucket).Msg("connected to gridfs successfully")
	return storage, nil
}

// newGridFSPhotoStorage opens the bucket on an already connected client.
func newGridFSPhotoStorage(client *mongo.Client, cfg config.Mongo, log *logger.Logger) (*gridFSPhotoStorage, error) {
	bucketOpts := options.GridFSBucket()
	if cfg.Bucket != "" {
		bucketOpts.SetName(cfg.Bucket)
	}
	bucket, err := gridfs.NewBucket(client.Database(cfg.Database), bucketOpts)
	if err != nil {
		return nil, fmt.Errorf("error opening gridfs bucket: %w", err)
	}

	return &gridFSPhotoStorage{client: client, bucket: bucket, logger: log}, nil
}

func (s *gridFSPhotoStorage) Save(ctx context.Context, name string, photo io.Reader) error {
	log := logger.FromContext(ctx)

	if err := validatePhotoName(name); err != nil {
		return err
	}

	stream, err := s.bucket.OpenUploadStream(name)
	if err != nil {
		log.Err(err).Str("func", "*gridFSPhotoStorage.Save").Str("name", name).Msg("error opening upload stream")
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	if _, err = io.Copy(stream, photo); err != nil {
		_ = stream.Abort()
		log.Err(err).Str("func", "*gridFSPhotoStorage.Save").Str("name", name).Msg("error uploading photo")
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	if err = stream.Close(); err != nil {
		log.Err(err).Str("func", "*gridFSPhotoStorage.Save").Str("name", name).Msg("error finishing upload")
		return fmt.Errorf("%w: %w", ErrSavingPhoto, err)
	}

	return nil
}

func (s *gridFSPhotoStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := validatePhotoName(name); err != nil {
		return nil, ErrPhotoNotFound
	}

	stream, err := s.bucket.OpenDownloadStreamByName(name)
	if err != nil {
		err = gridFSOpenError(err)
		if !errors.Is(err, ErrPhotoNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*gridFSPhotoStorage.Open").Str("name", name).Msg("error opening download stream")
		}
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	return stream, nil
}

func gridFSOpenError(err error) error {
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return ErrPhotoNotFound
	}
	return fmt.Errorf("error opening photo: %w", err)
}

// Close disconnects the mongo client.
func (s *gridFSPhotoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}
