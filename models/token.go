package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every issued token.
//
// UserID duplicates the "sub" claim as a number so that clients can read the
// authenticated user without parsing the subject string.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// UserID is the authenticated user the token was issued for.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
