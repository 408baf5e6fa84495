package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adilbekov/recipebox-api/internal/domain"
)

// SessionTTL bounds every issued session token.
const SessionTTL = 7 * 24 * time.Hour

type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// MakeSession signs an HS256 token binding uid for SessionTTL.
func MakeSession(secret, uid string) (string, error) {
	c := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			Subject:   uid,
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// ParseSession verifies a session token. Malformed, unverifiable or expired
// tokens yield ErrUnauthenticated; a verified token without a uid claim
// yields ErrInvalidClaim.
func ParseSession(secret, token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, domain.ErrUnauthenticated
	}
	if c.UID == "" {
		return nil, domain.ErrInvalidClaim
	}
	return c, nil
}
