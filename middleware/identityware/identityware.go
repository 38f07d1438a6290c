// Package identityware derives a request's identity from its bearer token.
//
// The middleware runs once per request, before any role-gated logic. A
// missing, malformed, expired, or badly signed token downgrades the request
// to anonymous: the request always proceeds, and downstream authorization
// decides what anonymous requests may do. Role enforcement lives in the
// auth package helpers, never here.
package identityware

import (
	"context"
	"strings"

	"github.com/goliatone/go-router"
)

// SubjectVerifier validates a raw bearer token and returns the trusted
// subject. It mirrors TokenService.Verify from the auth package without
// importing it.
type SubjectVerifier func(raw string) (subject string, err error)

// PrincipalResolver resolves a trusted subject to a principal and publishes
// it on the request context. It returns the input context unchanged and
// false when the subject is unknown.
type PrincipalResolver func(ctx context.Context, subject string) (context.Context, bool)

// Config holds the middleware options
type Config struct {
	// Verifier is required
	Verifier SubjectVerifier
	// Resolver is required
	Resolver PrincipalResolver
	// Filter skips the middleware when it returns true
	Filter func(router.Context) bool
	// HeaderName defaults to the Authorization header
	HeaderName string
	// AuthScheme defaults to "Bearer"
	AuthScheme string
}

func (cfg Config) withDefaults() Config {
	if cfg.Verifier == nil {
		panic("AUTH: identity middleware configuration: Verifier is required.")
	}
	if cfg.Resolver == nil {
		panic("AUTH: identity middleware configuration: Resolver is required.")
	}
	if cfg.HeaderName == "" {
		cfg.HeaderName = router.HeaderAuthorization
	}
	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}
	return cfg
}

// New creates the identity middleware. Per request it reads the bearer
// header, verifies the token, resolves the subject, and threads the
// principal through the request-scoped context. Every failure mode leaves
// the request anonymous and forwards it unchanged.
func New(config Config) router.MiddlewareFunc {
	cfg := config.withDefaults()

	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			if cfg.Filter != nil && cfg.Filter(ctx) {
				return next(ctx)
			}

			header := ctx.GetString(cfg.HeaderName, "")
			if header == "" {
				return next(ctx)
			}

			raw := stripScheme(header, cfg.AuthScheme)

			subject, err := cfg.Verifier(raw)
			if err != nil {
				// an invalid token is an anonymous request, not a failure
				return next(ctx)
			}

			resolved, ok := cfg.Resolver(ctx.Context(), subject)
			if !ok {
				return next(ctx)
			}

			ctx.SetContext(resolved)
			return next(ctx)
		}
	}
}

// stripScheme removes the auth scheme label when present. The verifier also
// tolerates the label, but stripping here keeps the contract independent of
// the verifier implementation.
func stripScheme(header, scheme string) string {
	l := len(scheme)
	if len(header) > l+1 && strings.EqualFold(header[:l], scheme) {
		return strings.TrimSpace(header[l:])
	}
	return header
}
