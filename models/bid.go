package models

import "time"

// Bid is an offer placed by a user on a house.
type Bid struct {
	BidID   int64
	Amount  float64
	UserID  int64
	HouseID int64

	// BidderName is resolved from the users table on reads.
	// Empty when the bidder row does not exist.
	BidderName string

	Timestamp time.Time
}

// TableName returns the name of the database table
// associated with the Bid model.
func (b Bid) TableName() string {
	return "bids"
}

// BidderNameOrUnknown returns BidderName, or [UnknownUserName] when the
// bidder could not be resolved.
func (b Bid) BidderNameOrUnknown() string {
	if b.BidderName == "" {
		return UnknownUserName
	}
	return b.BidderName
}
