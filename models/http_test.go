package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseResponses(t *testing.T) {
	houses := []House{
		{HouseID: 1, Address: "1 Main St", Price: 100000, Photo: "h.jpg", UserID: 7, OwnerName: "alice"},
		{HouseID: 2, Address: "2 Side St", Price: 50, Photo: "s.png", UserID: 8},
	}

	resp := NewHouseResponses(houses)
	require.Len(t, resp, 2)
	assert.Equal(t, "/uploads/h.jpg", resp[0].Photo)
	assert.Empty(t, resp[0].UserName)

	assert.Equal(t, "alice", houses[0].OwnerNameOrUnknown())
	assert.Equal(t, UnknownUserName, houses[1].OwnerNameOrUnknown())
}

func TestNewHouseResponses_EmptyEncodesAsArray(t *testing.T) {
	body, err := json.Marshal(NewHouseResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHouseResponse_JSON(t *testing.T) {
	h := NewHouseResponse(House{HouseID: 1, Address: "1 Main St", Price: 100000, Photo: "h.jpg", UserID: 1})

	body, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"address":"1 Main St","price":100000,"photo":"/uploads/h.jpg","user_id":1}`, string(body))

	h.UserName = "alice"
	body, err = json.Marshal(h)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"user_name":"alice"`)
}

func TestBidResponses(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bids := []Bid{
		{BidID: 3, Amount: 200, BidderName: "carol", Timestamp: ts},
		{BidID: 1, Amount: 150, Timestamp: ts},
	}

	resp := NewBidResponses(bids)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(3), resp[0].ID)
	assert.Equal(t, "carol", resp[0].User)
	assert.Equal(t, UnknownUserName, resp[1].User)

	body, err := json.Marshal(resp[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"amount":200,"user":"carol","timestamp":"2026-03-01T12:00:00Z"}`, string(body))
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	body, err := json.Marshal(User{UserID: 1, Username: "alice", Password: "hash"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"alice"}`, string(body))
}
