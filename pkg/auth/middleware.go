package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ContextWithClaims returns a new context with the given Claims attached.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts Claims from the context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// TokenValidator is satisfied by *JWTService.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// bearerToken extracts the token from an "authorization" value. The scheme
// is matched case-insensitively; a bare token is accepted as-is.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}
	return header
}

// UnaryAuthInterceptor returns a gRPC unary server interceptor that
// validates the caller's JWT and attaches its claims to the context.
// Methods listed in skipMethods pass through unauthenticated.
func UnaryAuthInterceptor(validator TokenValidator, skipMethods []string) grpc.UnaryServerInterceptor {
	skipSet := make(map[string]struct{}, len(skipMethods))
	for _, m := range skipMethods {
		skipSet[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if _, skip := skipSet[info.FullMethod]; skip {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}
		token := bearerToken(values[0])
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "empty bearer token")
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		return handler(ContextWithClaims(ctx, claims), req)
	}
}

// MethodRoles maps a full gRPC method name to the roles allowed to call it.
// Methods absent from the map only require an authenticated caller.
type MethodRoles map[string][]string

// RequireRoles returns a gRPC unary server interceptor enforcing the given
// per-method role policy. It must run after UnaryAuthInterceptor.
func RequireRoles(policy MethodRoles) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		roles, guarded := policy[info.FullMethod]
		if !guarded {
			return handler(ctx, req)
		}

		claims, ok := ClaimsFromContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "no claims in context")
		}

		for _, required := range roles {
			if claims.HasRole(required) {
				return handler(ctx, req)
			}
		}

		return nil, status.Errorf(codes.PermissionDenied, "required role(s): %v", roles)
	}
}
