package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/models"
)

type bidRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBidRepository constructs a [BidRepository] backed by db.
func NewBidRepository(db *DB, logger *logger.Logger) BidRepository {
	logger.Debug().Msg("creating bid repository")
	return &bidRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBid implements [BidRepository]. A foreign key violation is reported
// as ErrHouseNotFound: bidders come from authenticated tokens and users are
// never deleted, so the house is the reference that can be missing.
func (r *bidRepository) CreateBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	log := logger.FromContext(ctx)

	bid.Timestamp = time.Now().UTC()
	query, args, err := buildCreateBidQuery(r.db.builder, bid)
	if err != nil {
		log.Err(err).Str("func", "*bidRepository.CreateBid").Msg("error building query")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&bid.BidID); err != nil {
		log.Err(err).
			Str("func", "*bidRepository.CreateBid").
			Int64("house_id", bid.HouseID).
			Int64("user_id", bid.UserID).
			Msg("error inserting bid")

		switch r.db.classify(err) {
		case ForeignKeyViolation:
			return models.Bid{}, ErrHouseNotFound
		default:
			return models.Bid{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return bid, nil
}

// ListBidsByHouse implements [BidRepository].
func (r *bidRepository) ListBidsByHouse(ctx context.Context, houseID int64) ([]models.Bid, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBidsQuery(r.db.builder, houseID)
	if err != nil {
		log.Err(err).Str("func", "*bidRepository.ListBidsByHouse").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bidRepository.ListBidsByHouse").
			Int64("house_id", houseID).
			Msg("failed to execute query for listing bids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bids := make([]models.Bid, 0)
	for rows.Next() {
		var bid models.Bid
		if scanErr := rows.Scan(&bid.BidID, &bid.Amount, &bid.UserID, &bid.HouseID, &bid.Timestamp, &bid.BidderName); scanErr != nil {
			log.Err(scanErr).Str("func", "*bidRepository.ListBidsByHouse").Msg("failed to scan bid row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bids = append(bids, bid)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bidRepository.ListBidsByHouse").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bids, nil
}
