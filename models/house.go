package models

import "time"

// UploadsURLPrefix is the public URL prefix under which stored photos are served.
const UploadsURLPrefix = "/uploads/"

// House is a property listing owned by a single user.
type House struct {
	HouseID int64
	Address string
	Price   float64

	// Photo is the stored (sanitized) filename of the listing photo.
	Photo string

	// UserID references the owner.
	UserID int64

	// OwnerName is resolved from the users table on reads that join it.
	// Empty when the owner row does not exist.
	OwnerName string

	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the House model.
func (h House) TableName() string {
	return "houses"
}

// PhotoURL returns the public URL of the house photo.
func (h House) PhotoURL() string {
	return UploadsURLPrefix + h.Photo
}

// OwnerNameOrUnknown returns OwnerName, or [UnknownUserName] when the owner
// could not be resolved.
func (h House) OwnerNameOrUnknown() string {
	if h.OwnerName == "" {
		return UnknownUserName
	}
	return h.OwnerName
}

// NewHouse carries everything needed to list a house: the listing fields and
// the uploaded photo.
type NewHouse struct {
	UserID  int64
	Address string
	Price   float64

	// PhotoName is the client-supplied filename; it is sanitized before use.
	PhotoName string
	Photo     []byte
}
