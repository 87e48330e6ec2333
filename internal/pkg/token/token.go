package token

import (
	"errors"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Codec mints and verifies the signed tokens used by the auth module.
// It holds no state beyond the signing key and the access-token lifetime;
// refresh-token lifetime is supplied per call so the session layer owns policy.
type Codec struct {
	secret    []byte
	accessTTL time.Duration
}

type AccessClaims struct {
	UserID   int64    `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwtlib.RegisteredClaims
}

type RefreshClaims struct {
	UserID    int64  `json:"user_id"`
	SessionID string `json:"session_id"`
	jwtlib.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

func New(secret string, accessTTL time.Duration) *Codec {
	return &Codec{
		secret:    []byte(secret),
		accessTTL: accessTTL,
	}
}

func (c *Codec) CreateAccessToken(username string, userID int64, roles []string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.accessTTL)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// CreateRefreshToken embeds the session id alongside the subject. The expiry is
// caller-supplied, not derived here, so session lifetime stays a policy of the
// session layer.
//
// Every mint carries a fresh jti. iat/exp only have second precision, so
// without it two tokens minted within the same second would be byte-identical
// and rotation could not tell the new token from the one it replaced.
func (c *Codec) CreateRefreshToken(sessionID string, userID int64, expiresAt time.Time) (string, error) {
	claims := RefreshClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// TryParseRefreshToken verifies signature and time validity. Callers get a
// plain ok=false for anything wrong with the token; the reason is deliberately
// not distinguished.
func (c *Codec) TryParseRefreshToken(raw string) (RefreshClaims, bool) {
	var claims RefreshClaims
	token, err := jwtlib.ParseWithClaims(raw, &claims, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return RefreshClaims{}, false
	}
	if claims.SessionID == "" {
		return RefreshClaims{}, false
	}
	return claims, true
}

func (c *Codec) ParseAccessToken(raw string) (*AccessClaims, error) {
	var claims AccessClaims
	token, err := jwtlib.ParseWithClaims(raw, &claims, func(t *jwtlib.Token) (any, error) {
		return c.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
