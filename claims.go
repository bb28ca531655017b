package backoffice

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenClaims is the slice of the bearer token the client reads. Tokens are
// issued and verified server side; the client holds no signing key and only
// decodes the registered claims to detect expiry and identify the subject.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// UserID returns the subject claim, the backend's user identifier.
func (c *TokenClaims) UserID() string {
	return c.RegisteredClaims.Subject
}

// Expires returns the expiration time, zero when the claim is missing.
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// ExpiredAt reports whether the token is unusable at the given instant. A token
// without an expiry claim is treated as expired; the backend always sets one.
func (c *TokenClaims) ExpiredAt(now time.Time) bool {
	exp := c.Expires()
	return exp.IsZero() || exp.Before(now)
}

// CheckAt returns ErrTokenExpired when the token is unusable at the given
// instant, nil otherwise.
func (c *TokenClaims) CheckAt(now time.Time) error {
	if c.ExpiredAt(now) {
		return ErrTokenExpired
	}
	return nil
}

// DecodeToken decodes the claims of a raw bearer token without verifying the
// signature. Verification belongs to the backend; the client only needs the
// embedded expiry and subject.
func DecodeToken(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}
	return claims, nil
}
