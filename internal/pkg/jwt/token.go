package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// Token domains. A token issued for one domain never authenticates routes
// of the other.
const (
	DomainAdmin    = "admin"
	DomainCustomer = "customer"
)

// Typed validation failures. Callers compare with errors.Is.
var (
	ErrTokenMalformed   = errors.New("token is malformed")
	ErrSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired     = errors.New("token is expired")
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Domain string    `json:"domain,omitempty"`
	Role   string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// EffectiveDomain returns the domain a token is scoped to. Tokens minted
// before domain tagging carry no domain claim and resolve to the admin
// domain; this compatibility rule is relied on by older clients.
func (c *Claims) EffectiveDomain() string {
	if c.Domain == "" {
		return DomainAdmin
	}
	return c.Domain
}

// GenerateToken generates a signed HS256 token for the given principal
func GenerateToken(userID uuid.UUID, domain string, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := &Claims{
		UserID: userID,
		Domain: domain,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken validates a token string and returns its claims.
// The HMAC comparison inside the library is constant time. An expired
// token is rejected even when its signature verifies.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	if !token.Valid {
		return nil, ErrSignatureInvalid
	}

	return claims, nil
}
