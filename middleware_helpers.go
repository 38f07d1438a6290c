package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"
	"github.com/goliatone/go-session-auth/middleware/identityware"
)

// IdentityMiddleware wires the identityware filter against this package's
// token service and principal lookup: verify the bearer token, resolve the
// subject, thread the principal through the request context.
func IdentityMiddleware(tokens *TokenService, lookup PrincipalLookup, cfg Config) router.MiddlewareFunc {
	return identityware.New(identityware.Config{
		HeaderName: headerFromLookup(cfg.GetTokenLookup()),
		AuthScheme: cfg.GetAuthScheme(),
		Verifier: func(raw string) (string, error) {
			claims, err := tokens.Verify(raw)
			if err != nil {
				return "", err
			}
			return claims.Subject(), nil
		},
		Resolver: func(ctx context.Context, subject string) (context.Context, bool) {
			principal, err := lookup.FindByLogin(ctx, subject)
			if err != nil {
				return ctx, false
			}
			return WithPrincipal(ctx, principal), true
		},
	})
}

// RequireAuthenticated rejects anonymous requests with 401. It consults
// only the principal context published by the identity middleware.
func RequireAuthenticated() router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			if _, ok := PrincipalFromContext(ctx.Context()); !ok {
				return ctx.JSON(fiber.StatusUnauthorized, map[string]string{
					"error": "unauthenticated",
				})
			}
			return next(ctx)
		}
	}
}

// RequireRole rejects requests whose principal does not hold role. Anonymous
// requests get 401, authenticated principals with the wrong role get 403.
func RequireRole(role Role) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			principal, ok := PrincipalFromContext(ctx.Context())
			if !ok {
				return ctx.JSON(fiber.StatusUnauthorized, map[string]string{
					"error": "unauthenticated",
				})
			}

			if !principal.Role().IsAtLeast(role) {
				return ctx.JSON(fiber.StatusForbidden, map[string]string{
					"error": "forbidden",
				})
			}

			return next(ctx)
		}
	}
}

// headerFromLookup extracts the header name out of a "header:<name>" token
// lookup string. Anything else falls back to the Authorization header.
func headerFromLookup(lookup string) string {
	if after, ok := strings.CutPrefix(lookup, "header:"); ok {
		if name := strings.TrimSpace(after); name != "" {
			return name
		}
	}
	return "Authorization"
}
