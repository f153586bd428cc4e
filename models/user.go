package models

import "time"

// UnknownUserName is shown in place of a username when the referenced user
// row no longer exists.
const UnknownUserName = "Unknown User"

// User represents an account entity used for authentication and ownership of
// houses and bids.
type User struct {
	// UserID is the unique identifier of the user, assigned by the store.
	UserID int64 `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// Password holds the plaintext password on the way in (register, login)
	// and the bcrypt hash once loaded from the store. It is never serialized.
	Password string `json:"-"`

	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
