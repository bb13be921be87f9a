// Package auth issues and verifies the bearer tokens that gate catalog
// mutations. Tokens are HMAC-signed JWTs carrying the actor identity and a
// coarse role; in single-user mode the middleware installs a configured
// default actor instead.
package auth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/articod/articod/internal/catalogsrv/catcommon"
	"github.com/articod/articod/internal/catalogsrv/config"
	"github.com/articod/articod/internal/common/apperrors"
)

var (
	ErrAuth         apperrors.Error = apperrors.New("authentication error").SetStatusCode(http.StatusUnauthorized)
	ErrInvalidToken apperrors.Error = ErrAuth.New("invalid token")
	ErrExpiredToken apperrors.Error = ErrAuth.New("token expired")
	ErrForbidden    apperrors.Error = ErrAuth.New("insufficient role").SetStatusCode(http.StatusForbidden)
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateToken mints a signed token for the subject with the given role,
// valid for the configured duration.
func CreateToken(subject string, role catcommon.Role) (string, apperrors.Error) {
	if !role.Valid() {
		return "", ErrAuth.Msg("unknown role " + string(role))
	}
	key := config.Config().JWTSigningKey
	if key == "" {
		return "", ErrAuth.Msg("no signing key configured")
	}
	validity, err := time.ParseDuration(config.Config().TokenValidity)
	if err != nil {
		validity = 12 * time.Hour
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	})
	signed, signErr := token.SignedString([]byte(key))
	if signErr != nil {
		return "", ErrAuth.Err(signErr)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry and returns the embedded
// user context.
func ParseToken(tokenString string) (*catcommon.UserContext, apperrors.Error) {
	key := config.Config().JWTSigningKey
	if key == "" {
		return nil, ErrAuth.Msg("no signing key configured")
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken.Msg("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		if parsed != nil && parsed.Claims != nil {
			if exp, expErr := parsed.Claims.GetExpirationTime(); expErr == nil && exp != nil && exp.Before(time.Now()) {
				return nil, ErrExpiredToken
			}
		}
		return nil, ErrInvalidToken.Err(err)
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	role := catcommon.Role(c.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken.Msg("unknown role " + c.Role)
	}
	if c.Subject == "" {
		return nil, ErrInvalidToken.Msg("token has no subject")
	}
	return &catcommon.UserContext{Subject: c.Subject, Role: role}, nil
}
