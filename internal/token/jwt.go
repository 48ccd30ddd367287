package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/sessionvault/internal/model"
)

// Claims represents JWT claims carrying the session binding and role.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: []byte(secretKey)}
}

var _ model.TokenManager = (*JWT)(nil)

const (
	tokenTTL = 2 * time.Hour
	issuer   = "sessionvault"
	audience = "sessionvault-web"
)

// Issue creates a signed token binding the user to a session. The expiry is
// fixed at issuance and is never extended; refresh mints a new token.
func (j *JWT) Issue(username, sessionID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		SessionID: sessionID,
		Role:      role,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates the signature, expiry, issuer and audience before any
// claim is trusted. Any failure surfaces as model.ErrTokenInvalid.
func (j *JWT) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	return toModelClaims(claims), nil
}

// DecodeUnverified extracts claims without checking the signature. It exists
// only so callers can read the session id to perform a store lookup before
// trust is established; it must never be used to authorize an action.
func (j *JWT) DecodeUnverified(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrTokenInvalid, err)
	}

	return toModelClaims(claims), nil
}

func toModelClaims(c *Claims) model.TokenClaims {
	out := model.TokenClaims{
		Username:  c.Subject,
		SessionID: c.SessionID,
		Role:      c.Role,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
