package auth

import (
	"crypto/rand"
	"time"

	"github.com/goliatone/go-errors"
)

// Issuer is the fixed issuer claim identifying this system
const Issuer = "server-core"

// DefaultTokenLifetime is how long an issued bearer token stays valid
const DefaultTokenLifetime = 10 * time.Minute

// signingKeySize is sized for HMAC-SHA-512
const signingKeySize = 64

// TokenService issues and verifies bearer tokens for subjects. It wraps
// ClaimsCodec with the process-wide signing key, the fixed issuer, and the
// token lifetime, so signature mechanics stay independent of policy.
type TokenService struct {
	codec    *ClaimsCodec
	issuer   string
	lifetime time.Duration
	logger   Logger
}

type TokenServiceOption func(*TokenService)

// WithTokenLifetime overrides the default bearer token lifetime
func WithTokenLifetime(d time.Duration) TokenServiceOption {
	return func(ts *TokenService) {
		if d > 0 {
			ts.lifetime = d
		}
	}
}

// WithTokenLogger overrides the default logger
func WithTokenLogger(l Logger) TokenServiceOption {
	return func(ts *TokenService) {
		if l != nil {
			ts.logger = l
		}
	}
}

// NewTokenService creates a TokenService with the given signing key. An
// empty key generates a fresh random one, scoped to the process lifetime:
// tokens then survive only as long as the process, which matches the
// stateless session model.
func NewTokenService(signingKey []byte, opts ...TokenServiceOption) (*TokenService, error) {
	if len(signingKey) == 0 {
		signingKey = make([]byte, signingKeySize)
		if _, err := rand.Read(signingKey); err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "failed to generate signing key")
		}
	}

	ts := &TokenService{
		codec:    NewClaimsCodec(signingKey),
		issuer:   Issuer,
		lifetime: DefaultTokenLifetime,
		logger:   defLogger{},
	}

	for _, opt := range opts {
		opt(ts)
	}

	return ts, nil
}

// NewTokenServiceFromConfig builds a TokenService from the config surface:
// the signing key and bearer lifetime come from cfg, explicit options still
// win.
func NewTokenServiceFromConfig(cfg Config, opts ...TokenServiceOption) (*TokenService, error) {
	base := []TokenServiceOption{
		WithTokenLifetime(time.Duration(cfg.GetTokenExpiration()) * time.Minute),
	}
	return NewTokenService(cfg.GetSigningKey(), append(base, opts...)...)
}

// Issue builds claims for subject anchored at now and returns the signed
// bearer token, scheme label included.
func (ts *TokenService) Issue(subject string) (string, error) {
	claims := NewClaims(subject, ts.issuer, time.Now(), ts.lifetime)
	return ts.codec.Sign(claims)
}

// Verify decodes and validates raw, returning the trusted claims. No store
// is consulted; principal resolution happens only after claims are trusted.
func (ts *TokenService) Verify(raw string) (*Claims, error) {
	return ts.codec.Verify(raw)
}

// Lifetime returns the configured bearer token lifetime
func (ts *TokenService) Lifetime() time.Duration {
	return ts.lifetime
}
