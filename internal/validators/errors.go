package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyAddress     = errors.New("address is required")
	ErrInvalidPrice     = errors.New("price must be a finite number")
	ErrEmptyPhoto       = errors.New("photo is required")
	ErrInvalidPhotoName = errors.New("invalid photo filename")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidHouseID   = errors.New("invalid house ID")
	ErrInvalidAmount    = errors.New("amount must be a finite number")
)
