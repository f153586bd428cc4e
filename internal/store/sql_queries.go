package store

import (
	"github.com/MKhiriev/go-house-bids/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns  = []string{"id", "username", "password", "created_at"}
	houseColumns = []string{"h.id", "h.address", "h.price", "h.photo", "h.user_id", "h.created_at", "COALESCE(u.username, '')"}
	bidColumns   = []string{"b.id", "b.amount", "b.user_id", "b.house_id", "b.created_at", "COALESCE(u.username, '')"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password", "created_at").
		Values(user.Username, user.Password, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildUpdateUsernameQuery(b sq.StatementBuilderType, userID int64, username string) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("username", username).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildCreateHouseQuery(b sq.StatementBuilderType, house models.House) (string, []any, error) {
	return b.Insert(house.TableName()).
		Columns("address", "price", "photo", "user_id", "created_at").
		Values(house.Address, house.Price, house.Photo, house.UserID, house.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// selectHouses joins the owner so reads carry the owner's username.
func selectHouses(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(houseColumns...).
		From(models.House{}.TableName() + " h").
		LeftJoin(models.User{}.TableName() + " u ON u.id = h.user_id")
}

func buildGetHouseQuery(b sq.StatementBuilderType, houseID int64) (string, []any, error) {
	return selectHouses(b).
		Where(sq.Eq{"h.id": houseID}).
		ToSql()
}

// buildListHousesQuery lists all houses, or only userID's houses when
// userID is non-nil.
func buildListHousesQuery(b sq.StatementBuilderType, userID *int64) (string, []any, error) {
	query := selectHouses(b)
	if userID != nil {
		query = query.Where(sq.Eq{"h.user_id": *userID})
	}
	return query.OrderBy("h.id ASC").ToSql()
}

func buildCreateBidQuery(b sq.StatementBuilderType, bid models.Bid) (string, []any, error) {
	return b.Insert(bid.TableName()).
		Columns("amount", "user_id", "house_id", "created_at").
		Values(bid.Amount, bid.UserID, bid.HouseID, bid.Timestamp).
		Suffix("RETURNING id").
		ToSql()
}

func buildListBidsQuery(b sq.StatementBuilderType, houseID int64) (string, []any, error) {
	return b.Select(bidColumns...).
		From(models.Bid{}.TableName() + " b").
		LeftJoin(models.User{}.TableName() + " u ON u.id = b.user_id").
		Where(sq.Eq{"b.house_id": houseID}).
		OrderBy("b.amount DESC", "b.id ASC").
		ToSql()
}
