package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token wraps a signed JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" claim converted to uuid.UUID.
// It is populated during token construction or after a successful parse and
// avoids repeated string-to-UUID parsing.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set embedded in the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`
}

// TokenClaims is the claim set carried by every issued token. Besides the
// registered claims it echoes the profile fields of the authenticated user,
// matching the payload shape the frontend consumes.
//
// The profile echo can go stale relative to the stored user row; the id is
// the only field the server itself trusts.
type TokenClaims struct {
	jwt.RegisteredClaims

	Lastname   string `json:"lastname,omitempty"`
	Firstname  string `json:"firstname,omitempty"`
	Middlename string `json:"middlename,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Login      string `json:"login,omitempty"`
}

// GetUserID extracts the user identifier from the claim set's "sub" claim
// and parses it as a UUID.
//
// Returns an error if the subject claim is missing, empty, or not a valid
// UUID string.
func (c *TokenClaims) GetUserID() (uuid.UUID, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to UUID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
