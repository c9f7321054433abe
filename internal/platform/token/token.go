package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/roamly/roamly-api/internal/domain"
)

var (
	// ErrInvalidToken covers bad signatures, malformed payloads, unexpected
	// algorithms, and missing subjects.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpired indicates a structurally valid token past its expiry.
	ErrExpired = errors.New("token expired")
)

// Issuer mints and verifies signed, time-limited identity assertions.
// Tokens are stateless: there is no server-side revocation store, and a new
// token requires re-authentication.
type Issuer struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return NewIssuerWithNow(secret, ttl, nil)
}

// NewIssuerWithNow overrides the wall clock for deterministic tests.
func NewIssuerWithNow(secret []byte, ttl time.Duration, now func() time.Time) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{secret: secret, ttl: ttl, now: now}
}

// Issue signs a token embedding the user ID and an absolute expiry.
func (i *Issuer) Issue(userID domain.UserID) (string, error) {
	now := i.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify validates the signature and expiry and returns the embedded user ID.
// It distinguishes ErrExpired from ErrInvalidToken so callers can surface
// different messages for the two cases.
func (i *Issuer) Verify(tokenString string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalidToken
	}
	if !parsed.Valid {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return domain.UserID(id), nil
}
