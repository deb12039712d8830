package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type validatorFunc func(token string) (*Claims, error)

func (f validatorFunc) ValidateToken(token string) (*Claims, error) { return f(token) }

func acceptOnly(want string, claims *Claims) TokenValidator {
	return validatorFunc(func(token string) (*Claims, error) {
		if token != want {
			return nil, errors.New("signature mismatch")
		}
		return claims, nil
	})
}

func incoming(authorization string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", authorization))
}

// echoClaims is a handler that returns the claims it was called with.
func echoClaims(ctx context.Context, _ interface{}) (interface{}, error) {
	claims, _ := ClaimsFromContext(ctx)
	return claims, nil
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Equal(t, "abc", bearerToken("abc"))
	assert.Equal(t, "", bearerToken("Bearer "))
}

func TestUnaryAuthInterceptor(t *testing.T) {
	claims := &Claims{UserID: 7, Roles: []string{RoleCustomer}}
	interceptor := UnaryAuthInterceptor(acceptOnly("good", claims), []string{"/grpc.health.v1.Health/Check"})
	info := &grpc.UnaryServerInfo{FullMethod: "/credit.v1.CreditRiskService/ListLoans"}

	t.Run("attaches claims for a valid token", func(t *testing.T) {
		resp, err := interceptor(incoming("Bearer good"), nil, info, echoClaims)

		require.NoError(t, err)
		assert.Same(t, claims, resp)
	})

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "no metadata", ctx: context.Background()},
		{name: "no authorization header", ctx: metadata.NewIncomingContext(context.Background(), metadata.MD{})},
		{name: "empty token", ctx: incoming("Bearer ")},
		{name: "invalid token", ctx: incoming("Bearer forged")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interceptor(tt.ctx, nil, info, echoClaims)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}

	t.Run("accepts tokens minted by JWTService", func(t *testing.T) {
		svc := newTestJWTService(t)
		token, err := svc.GenerateToken(11, nil)
		require.NoError(t, err)

		resp, err := UnaryAuthInterceptor(svc, nil)(incoming("BEARER "+token), nil, info, echoClaims)

		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.(*Claims).UserID)
	})

	t.Run("skipped methods need no token", func(t *testing.T) {
		_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, echoClaims)
		assert.NoError(t, err)
	})
}

func TestRequireRoles(t *testing.T) {
	interceptor := RequireRoles(MethodRoles{"/svc/Decide": {RoleAdmin}})
	decide := &grpc.UnaryServerInfo{FullMethod: "/svc/Decide"}

	t.Run("unguarded methods pass", func(t *testing.T) {
		_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/List"}, echoClaims)
		assert.NoError(t, err)
	})

	t.Run("admin role passes", func(t *testing.T) {
		ctx := ContextWithClaims(context.Background(), &Claims{UserID: 1, Roles: []string{RoleAdmin}})
		_, err := interceptor(ctx, nil, decide, echoClaims)
		assert.NoError(t, err)
	})

	t.Run("legacy is_admin claim passes", func(t *testing.T) {
		ctx := ContextWithClaims(context.Background(), &Claims{UserID: 1, IsAdmin: true})
		_, err := interceptor(ctx, nil, decide, echoClaims)
		assert.NoError(t, err)
	})

	t.Run("customer is denied", func(t *testing.T) {
		ctx := ContextWithClaims(context.Background(), &Claims{UserID: 7, Roles: []string{RoleCustomer}})
		_, err := interceptor(ctx, nil, decide, echoClaims)
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("missing claims are unauthenticated", func(t *testing.T) {
		_, err := interceptor(context.Background(), nil, decide, echoClaims)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
