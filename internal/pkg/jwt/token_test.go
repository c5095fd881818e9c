package jwt

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "unit-test-secret",
	Expiration: 60,
	Issuer:     "finonest",
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, DomainAdmin, models.RoleAdmin, testJWTConfig)
	require.NoError(t, err)
	assert.Len(t, strings.Split(tokenString, "."), 3)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, testJWTConfig.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, DomainAdmin, claims.Domain)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
	assert.Equal(t, "finonest", claims.Issuer)
	assert.Equal(t, expiresAt, claims.ExpiresAt.Unix())
}

func TestValidateToken_TamperedPayload(t *testing.T) {
	tokenString, _, err := GenerateToken(uuid.New(), DomainCustomer, models.RoleCustomer, testJWTConfig)
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	// Flip the domain claim without re-signing.
	tampered := strings.Replace(string(payload), DomainCustomer, DomainAdmin, 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(tampered))

	_, err = ValidateToken(strings.Join(parts, "."), testJWTConfig.Secret)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, _, err := GenerateToken(uuid.New(), DomainAdmin, models.RoleAdmin, testJWTConfig)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "some-other-secret")
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	userID := uuid.New()
	claims := &Claims{
		UserID: userID,
		Domain: DomainAdmin,
		Role:   string(models.RoleAdmin),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testJWTConfig.Secret))
	require.NoError(t, err)

	// Correctly signed but past exp: expired wins.
	_, err = ValidateToken(tokenString, testJWTConfig.Secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-token", testJWTConfig.Secret)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = ValidateToken("a.b", testJWTConfig.Secret)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidateToken_RejectsNonHMACAlgorithm(t *testing.T) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{
		"user_id": uuid.New().String(),
		"domain":  DomainAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, testJWTConfig.Secret)
	assert.Error(t, err)
}

func TestEffectiveDomain_EmptyDefaultsToAdmin(t *testing.T) {
	// Legacy tokens carry no domain claim and must resolve to admin.
	claims := &Claims{}
	assert.Equal(t, DomainAdmin, claims.EffectiveDomain())

	claims.Domain = DomainCustomer
	assert.Equal(t, DomainCustomer, claims.EffectiveDomain())
}
