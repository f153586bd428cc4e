package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/go-house-bids/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"

	FieldAddress = "address"
	FieldPrice   = "price"
	FieldPhoto   = "photo"

	FieldAmount = "amount"

	// FieldUserID targets the owner of a house or the author of a bid.
	FieldUserID = "user_id"
	// FieldHouseID targets the house a bid is placed on.
	FieldHouseID = "house_id"
)

// HouseBidsValidator implements Validator for the request models of the
// listing service: credentials ([models.User]), new listings
// ([models.NewHouse]) and bids ([models.Bid]).
//
// Value and pointer forms are accepted. Bid amounts are only checked for
// being finite; their size is not restricted.
type HouseBidsValidator struct {
}

// NewHouseBidsValidator returns a ready to use HouseBidsValidator.
func NewHouseBidsValidator() Validator {
	return &HouseBidsValidator{}
}

// Validate dispatches to the type-specific check for obj.
// Returns ErrUnsupportedType for any other type and ErrUnknownField when a
// requested field does not belong to the type.
func (v *HouseBidsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	case models.NewHouse:
		return v.validateNewHouse(value, fields...)
	case *models.NewHouse:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNewHouse(*value, fields...)
	case models.Bid:
		return v.validateBid(value, fields...)
	case *models.Bid:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateBid(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *HouseBidsValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *HouseBidsValidator) validateNewHouse(house models.NewHouse, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldAddress, FieldPrice, FieldPhoto}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if house.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldAddress:
			if strings.TrimSpace(house.Address) == "" {
				return ErrEmptyAddress
			}
		case FieldPrice:
			if !isFinite(house.Price) {
				return ErrInvalidPrice
			}
		case FieldPhoto:
			// an upload is present when it has a filename; its content may be empty
			if house.PhotoName == "" {
				return ErrEmptyPhoto
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *HouseBidsValidator) validateBid(bid models.Bid, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldHouseID, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if bid.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldHouseID:
			if bid.HouseID <= 0 {
				return ErrInvalidHouseID
			}
		case FieldAmount:
			if !isFinite(bid.Amount) {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
