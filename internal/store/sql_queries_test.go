// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-house-bids/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	now := time.Now()
	user := models.User{Username: "alice", Password: "hash", CreatedAt: now}

	query, args, err := buildCreateUserQuery(dollar, user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,password,created_at) VALUES ($1,$2,$3) RETURNING id", query)
	assert.Equal(t, []any{"alice", "hash", now}, args)

	query, _, err = buildCreateUserQuery(question, user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (username,password,created_at) VALUES (?,?,?) RETURNING id", query)
}

func Test_buildFindUserQuery(t *testing.T) {
	query, args, err := buildFindUserQuery(dollar, sq.Eq{"username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, username, password, created_at FROM users WHERE username = $1", query)
	assert.Equal(t, []any{"alice"}, args)
}

func Test_buildUpdateUsernameQuery(t *testing.T) {
	query, args, err := buildUpdateUsernameQuery(question, 5, "carol")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET username = ? WHERE id = ?", query)
	assert.Equal(t, []any{"carol", int64(5)}, args)
}

func Test_buildListHousesQuery(t *testing.T) {
	tests := []struct {
		name      string
		userID    *int64
		wantWhere bool
		wantArgs  int
	}{
		{name: "all houses", userID: nil},
		{name: "scoped to owner", userID: func() *int64 { id := int64(2); return &id }(), wantWhere: true, wantArgs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListHousesQuery(dollar, tt.userID)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM houses h LEFT JOIN users u ON u.id = h.user_id")
			assert.Contains(t, query, "COALESCE(u.username, '')")
			assert.Contains(t, query, "ORDER BY h.id ASC")
			assert.Len(t, args, tt.wantArgs)
			if tt.wantWhere {
				assert.Contains(t, query, "WHERE h.user_id = $1")
			} else {
				assert.NotContains(t, query, "WHERE")
			}
		})
	}
}

func Test_buildListBidsQuery(t *testing.T) {
	query, args, err := buildListBidsQuery(dollar, 1)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM bids b LEFT JOIN users u ON u.id = b.user_id")
	assert.Contains(t, query, "WHERE b.house_id = $1")
	assert.Contains(t, query, "ORDER BY b.amount DESC, b.id ASC")
	assert.Equal(t, []any{int64(1)}, args)
}

func Test_buildCreateBidQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildCreateBidQuery(question, models.Bid{Amount: 10, UserID: 2, HouseID: 3, Timestamp: now})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bids (amount,user_id,house_id,created_at) VALUES (?,?,?,?) RETURNING id", query)
	assert.Equal(t, []any{10.0, int64(2), int64(3), now}, args)
}
