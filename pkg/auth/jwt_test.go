package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "credit-test",
		Expiration: 15 * time.Minute,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(42, []string{RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "credit-test", claims.Issuer)
	assert.True(t, claims.HasRole(RoleAdmin))
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: -1 * time.Hour,
	})
	require.NoError(t, err)

	token, err := svc.GenerateToken(7, []string{RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	svc1, err := NewJWTService(JWTConfig{Secret: "secret-one", Expiration: time.Minute})
	require.NoError(t, err)
	svc2, err := NewJWTService(JWTConfig{Secret: "secret-two", Expiration: time.Minute})
	require.NoError(t, err)

	token, err := svc1.GenerateToken(7, nil)
	require.NoError(t, err)

	_, err = svc2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_SubjectAndIsAdminClaims(t *testing.T) {
	svc := newTestJWTService(t)

	// Shape produced by the identity service: numeric sub plus is_admin.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "15",
		"iss":      "credit-test",
		"is_admin": true,
		"exp":      time.Now().Add(time.Minute).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret-key-for-unit-tests"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(15), claims.UserID)
	assert.True(t, claims.HasRole(RoleAdmin))
}

func TestValidateToken_RSA(t *testing.T) {
	privPEM, pubPEM, err := GenerateKeyPair()
	require.NoError(t, err)

	issuer, err := NewJWTService(JWTConfig{PrivateKeyPEM: string(privPEM), Expiration: time.Minute})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{PublicKeyPEM: string(pubPEM)})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(3, []string{RoleCustomer})
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), claims.UserID)

	_, err = validator.GenerateToken(3, nil)
	assert.ErrorIs(t, err, ErrNoSigningKey)
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

func TestHasRole(t *testing.T) {
	claims := Claims{Roles: []string{RoleCustomer}}
	assert.True(t, claims.HasRole(RoleCustomer))
	assert.False(t, claims.HasRole(RoleAdmin))

	claims.IsAdmin = true
	assert.True(t, claims.HasRole(RoleAdmin))
}

func TestClaimsFromContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithClaims(context.Background(), &Claims{UserID: 9})
	got, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(9), got.UserID)
}
