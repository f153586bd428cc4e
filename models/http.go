package models

import "time"

// Credentials is the request body of the register and login routes.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsernameUpdate is the request body of the current-user update route.
// An empty Username leaves the account unchanged.
type UsernameUpdate struct {
	Username string `json:"username"`
}

// BidRequest is the request body of the place-bid route.
// Amount is a pointer so that a missing field can be told apart from zero.
type BidRequest struct {
	Amount *float64 `json:"amount"`
}

// MessageResponse is the body of every non-data response, including errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// HouseResponse is the public view of a house.
// UserName is only filled on the single-house route.
type HouseResponse struct {
	ID       int64   `json:"id"`
	Address  string  `json:"address"`
	Price    float64 `json:"price"`
	Photo    string  `json:"photo"`
	UserID   int64   `json:"user_id"`
	UserName string  `json:"user_name,omitempty"`
}

// BidResponse is the public view of a bid.
type BidResponse struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{ID: u.UserID, Username: u.Username}
}

// NewHouseResponse builds the public view of h without the owner name.
func NewHouseResponse(h House) HouseResponse {
	return HouseResponse{
		ID:      h.HouseID,
		Address: h.Address,
		Price:   h.Price,
		Photo:   h.PhotoURL(),
		UserID:  h.UserID,
	}
}

// NewHouseResponses builds the public view of every house in houses.
// The result is never nil so that it encodes as a JSON array.
func NewHouseResponses(houses []House) []HouseResponse {
	resp := make([]HouseResponse, 0, len(houses))
	for _, h := range houses {
		resp = append(resp, NewHouseResponse(h))
	}
	return resp
}

// NewBidResponses builds the public view of every bid in bids, preserving order.
func NewBidResponses(bids []Bid) []BidResponse {
	resp := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, BidResponse{
			ID:        b.BidID,
			Amount:    b.Amount,
			User:      b.BidderNameOrUnknown(),
			Timestamp: b.Timestamp,
		})
	}
	return resp
}
