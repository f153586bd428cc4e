package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bidRowColumns = []string{"id", "amount", "user_id", "house_id", "created_at", "username"}

func newTestBidRepo(t *testing.T) (*bidRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &bidRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateBid_Success(t *testing.T) {
	repo, mock := newTestBidRepo(t)

	mock.ExpectQuery("INSERT INTO bids \\(amount,user_id,house_id,created_at\\)").
		WithArgs(150.0, int64(2), int64(1), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	bid, err := repo.CreateBid(context.Background(), models.Bid{Amount: 150, UserID: 2, HouseID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(4), bid.BidID)
	assert.False(t, bid.Timestamp.IsZero())
}

func TestCreateBid_HouseMissing(t *testing.T) {
	repo, mock := newTestBidRepo(t)

	mock.ExpectQuery("INSERT INTO bids").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateBid(context.Background(), models.Bid{Amount: 1, UserID: 1, HouseID: 999})
	assert.ErrorIs(t, err, ErrHouseNotFound)
}

func TestCreateBid_DriverError(t *testing.T) {
	repo, mock := newTestBidRepo(t)

	mock.ExpectQuery("INSERT INTO bids").
		WillReturnError(errors.New("timeout"))

	_, err := repo.CreateBid(context.Background(), models.Bid{Amount: 1, UserID: 1, HouseID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrHouseNotFound)
}

func TestListBidsByHouse(t *testing.T) {
	repo, mock := newTestBidRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bids b LEFT JOIN users u ON u.id = b.user_id WHERE b.house_id = \\$1 ORDER BY b.amount DESC, b.id ASC").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bidRowColumns).
			AddRow(2, 50.0, 1, 1, now, "alice").
			AddRow(3, 30.0, 2, 1, now, "").
			AddRow(1, 10.0, 1, 1, now, "alice"))

	bids, err := repo.ListBidsByHouse(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, bids, 3)

	assert.Equal(t, 50.0, bids[0].Amount)
	assert.Equal(t, models.UnknownUserName, bids[1].BidderNameOrUnknown())
	assert.Equal(t, "alice", bids[2].BidderNameOrUnknown())
}

func TestListBidsByHouse_QueryError(t *testing.T) {
	repo, mock := newTestBidRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("down"))

	_, err := repo.ListBidsByHouse(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
