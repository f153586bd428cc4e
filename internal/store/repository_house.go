package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/models"
)

// houseRepository is the database/sql implementation of [HouseRepository].
type houseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHouseRepository constructs a [HouseRepository] backed by db.
func NewHouseRepository(db *DB, logger *logger.Logger) HouseRepository {
	logger.Debug().Msg("creating house repository")
	return &houseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *houseRepository) CreateHouse(ctx context.Context, house models.House) (models.House, error) {
	log := logger.FromContext(ctx)

	house.CreatedAt = time.Now().UTC()
	query, args, err := buildCreateHouseQuery(r.db.builder, house)
	if err != nil {
		log.Err(err).Str("func", "*houseRepository.CreateHouse").Msg("error building query")
		return models.House{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&house.HouseID); err != nil {
		log.Err(err).
			Str("func", "*houseRepository.CreateHouse").
			Int64("user_id", house.UserID).
			Msg("error inserting house")

		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.House{}, ErrNoUserWasFound
		default:
			return models.House{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return house, nil
}

func (r *houseRepository) GetHouse(ctx context.Context, houseID int64) (models.House, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetHouseQuery(r.db.builder, houseID)
	if err != nil {
		log.Err(err).Str("func", "*houseRepository.GetHouse").Msg("error building query")
		return models.House{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	house, err := scanHouse(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.House{}, ErrHouseNotFound
	case err != nil:
		log.Err(err).Str("func", "*houseRepository.GetHouse").Int64("house_id", houseID).Msg("error getting house")
		return models.House{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return house, nil
}

func (r *houseRepository) ListHouses(ctx context.Context) ([]models.House, error) {
	return r.listHouses(ctx, "*houseRepository.ListHouses", nil)
}

func (r *houseRepository) ListHousesByUser(ctx context.Context, userID int64) ([]models.House, error) {
	return r.listHouses(ctx, "*houseRepository.ListHousesByUser", &userID)
}

func (r *houseRepository) listHouses(ctx context.Context, funcName string, userID *int64) ([]models.House, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHousesQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing houses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	houses := make([]models.House, 0)
	for rows.Next() {
		house, scanErr := scanHouse(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan house row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		houses = append(houses, house)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return houses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHouse(row rowScanner) (models.House, error) {
	var house models.House
	err := row.Scan(
		&house.HouseID,
		&house.Address,
		&house.Price,
		&house.Photo,
		&house.UserID,
		&house.CreatedAt,
		&house.OwnerName,
	)
	return house, err
}
