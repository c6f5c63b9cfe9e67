package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/heart-journal/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionSubject is the "sub" claim of every journal session token. There is
// a single user, so the session id (jti) is what tells tokens apart.
const SessionSubject = "journal"

// ErrInvalidAuthHeader is returned by ParseBearerToken for anything other
// than "Bearer <token>".
var ErrInvalidAuthHeader = errors.New("invalid authorization header")

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for an unlocked
// journal session.
//
// The token carries the standard claims:
//   - Issuer    (iss): identifies the server that issued the token
//   - Subject   (sub): always [SessionSubject]
//   - ID        (jti): the session identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("heart-journal", sessionID, time.Hour, "secret")
func GenerateSessionToken(issuer, sessionID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || sessionID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   SessionSubject,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		SessionID:        sessionID,
	}, nil
}

// ValidateSessionToken verifies the signature, issuer and expiry of
// tokenString and extracts the session id from its "jti" claim. Only HS256
// tokens are accepted.
func ValidateSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := models.Token{}

	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if parsed.ID == "" {
		return models.Token{}, errors.New("empty session id error")
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.SessionID = parsed.ID

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
