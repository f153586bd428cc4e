package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-house-bids/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyUserID is returned by ValidateAndParseJWTToken when the token
// carries neither a user_id claim nor a numeric subject.
var ErrEmptyUserID = errors.New("token carries no user id")

// GenerateJWTToken creates an HS256 token for userID.
//
// Claims:
//   - user_id: the user ID as a number
//   - sub:     the user ID as a decimal string
//   - iss:     issuer
//   - iat:     now
//   - exp:     now + tokenDuration
//
// A negative tokenDuration is accepted and produces an already expired token.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns the user it was
// issued for.
//
// The signature must be HS256 with tokenSignKey, iss must equal tokenIssuer
// and exp must be present and in the future. Errors from the jwt package are
// wrapped, so callers can match jwt.ErrTokenExpired and friends with
// errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok {
		return models.Token{}, errors.New("unexpected token claims type")
	}

	userID := claims.UserID
	if userID == 0 {
		userID, err = strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID == 0 {
			return models.Token{}, ErrEmptyUserID
		}
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}
