package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/internal/store"
	"github.com/MKhiriev/go-house-bids/models"
)

// bidService records bids. Any amount is accepted: bids are not compared
// with earlier bids or the listing price.
type bidService struct {
	bidRepository store.BidRepository

	logger *logger.Logger
}

func NewBidService(bidRepository store.BidRepository, logger *logger.Logger) BidService {
	return &bidService{
		bidRepository: bidRepository,
		logger:        logger,
	}
}

// PlaceBid returns store.ErrHouseNotFound when the house does not exist.
func (b *bidService) PlaceBid(ctx context.Context, bid models.Bid) (models.Bid, error) {
	placed, err := b.bidRepository.CreateBid(ctx, bid)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("house_id", bid.HouseID).
			Int64("user_id", bid.UserID).
			Float64("amount", bid.Amount).
			Msg("placing bid failed")
		return models.Bid{}, fmt.Errorf("placing bid failed: %w", err)
	}
	return placed, nil
}

// ListBids returns the bids on houseID, highest first.
func (b *bidService) ListBids(ctx context.Context, houseID int64) ([]models.Bid, error) {
	bids, err := b.bidRepository.ListBidsByHouse(ctx, houseID)
	if err != nil {
		return nil, fmt.Errorf("listing bids failed: %w", err)
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	return bids, nil
}
