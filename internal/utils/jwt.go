package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given user.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a UUID string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration; omitted when
//     tokenDuration is zero — legacy clients hold tokens indefinitely
//
// Besides the standard claims the token echoes the user's profile fields
// (lastname, firstname, middlename, email, phone, login) so that the
// frontend can render the account header without an extra profile request.
//
// Returns an error if issuer or signKey are empty, the user has no ID, or
// signing fails.
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if user.ID == uuid.Nil {
		return models.Token{}, errors.New("user has no ID to embed into JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  user.ID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
		Lastname:   user.Lastname,
		Firstname:  user.Firstname,
		Middlename: user.Middlename,
		Email:      user.Email,
		Phone:      user.Phone,
		Login:      user.Login,
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		Claims:       claims,
		SignedString: tokenString,
		UserID:       user.ID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check when the claim is present
//   - Subject (sub) claim presence and conversion to a UUID UserID
//
// Returns the parsed token model with the extracted UserID, or an error if
// validation fails, claims are missing, or the subject is not a UUID.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, Claims: *claims, UserID: userID}, nil
}
